package jsonscript

import "html/template"

// FuncMap exposes the encoder to html/template as a json_script function:
//
//	{{ json_script .Value "element-id" }}
//
// The fragment is returned as template.HTML so contextual autoescaping
// leaves it intact; its payload is already script-safe.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"json_script": func(value any, elementID string) (template.HTML, error) {
			fragment, err := Render(value, elementID)
			if err != nil {
				return "", err
			}
			return template.HTML(fragment), nil
		},
	}
}
