package render

import (
	"fmt"
	"html/template"

	"gitlab.com/begraf/trailpost/res"
)

func ReadTemplates() (*template.Template, error) {
	templates, err := template.New("").ParseFS(res.Templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}
