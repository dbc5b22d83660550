package jslex

// ModuleString is a module-name string literal found in an import or
// export statement.
type ModuleString struct {
	Value string // literal contents, without the wrapping quotes
	Pos   int    // byte offset of the contents in the source
}

// FindImportExportStrings returns the module-name string literals
// referenced by import and export statements in src, in source order.
//
// Handled shapes:
//
//	import "module-name";
//	import("module-name");
//	import defaultExport, { export1 as alias1, ... } from "module-name";
//	import defaultExport, * as name from "module-name";
//	export * from "module-name";
//	export * as name1 from "module-name";
//	export { name1, default as alias, ... } from "module-name";
//
// Plain exports without a from clause reference no module and yield
// nothing.
func FindImportExportStrings(src string) []ModuleString {
	var toks []Token
	for _, t := range New().Lex(src) {
		if t.Name != "ws" {
			toks = append(toks, t)
		}
	}

	var matches []ModuleString
	appendString := func(t Token) {
		if t.Name != "string" {
			return
		}
		matches = append(matches, ModuleString{
			Value: t.Text[1 : len(t.Text)-1],
			Pos:   t.Pos + 1,
		})
	}
	appendAfterFrom := func(start int) {
		for j := start; j < len(toks); j++ {
			if toks[j].Name == "id" && toks[j].Text == "from" && j+1 < len(toks) {
				appendString(toks[j+1])
				return
			}
		}
	}

	for i, t := range toks {
		if t.Name != "keyword" {
			continue
		}
		switch t.Text {
		case "import":
			switch {
			// import "module-name";
			case i+1 < len(toks) && toks[i+1].Name == "string":
				appendString(toks[i+1])
			// import("module-name");
			case i+2 < len(toks) && toks[i+1].Name == "punct" && toks[i+1].Text == "(":
				appendString(toks[i+2])
			// anything else: scan for the from clause; "from" lexes as
			// an id, not a keyword
			default:
				appendAfterFrom(i + 1)
			}
		case "export":
			switch {
			// export * from "module-name";
			// export * as name1 from "module-name";
			case i+1 < len(toks) && toks[i+1].Text == "*":
				appendAfterFrom(i + 1)
			// export { ... } from "module-name"; only an aggregation
			// export references a module, so a from clause must follow
			// the closing brace.
			case i+1 < len(toks) && toks[i+1].Text == "{":
				for j := i + 1; j < len(toks); j++ {
					if toks[j].Name == "punct" && toks[j].Text == "}" &&
						j+2 < len(toks) &&
						toks[j+1].Name == "id" && toks[j+1].Text == "from" {
						appendString(toks[j+2])
						break
					}
				}
			}
		}
	}
	return matches
}
