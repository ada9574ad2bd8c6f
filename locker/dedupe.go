package locker

// DedupeByName keeps the first occurrence of every locker name and drops
// later records with the same name. Neighboring route points share most of
// their search radius, so the same locker usually arrives several times.
func DedupeByName(lockers []Locker) []Locker {
	seen := make(map[string]struct{}, len(lockers))

	var unique []Locker
	for _, l := range lockers {
		if _, ok := seen[l.Name]; ok {
			continue
		}

		seen[l.Name] = struct{}{}
		unique = append(unique, l)
	}

	return unique
}
