package langdetect

import "github.com/parchlabs/mdast/pkg/mdast"

// Annotate fills in the Lang field of code blocks parsed without an info
// string, using content-based detection. Blocks with an explicit language
// are left alone. Returns the number of blocks annotated.
func Annotate(root mdast.Node) int {
	annotated := 0
	for _, n := range mdast.FindByKind(root, mdast.KindCode) {
		code, ok := n.(*mdast.Code)
		if !ok || code.Lang != "" || code.Value == "" {
			continue
		}
		if lang := Detect([]byte(code.Value)); lang != langText {
			code.Lang = lang
			annotated++
		}
	}
	return annotated
}
