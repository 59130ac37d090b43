package drawer

import "github.com/go-drift/drawer/pkg/dom"

// initialFocus returns the element to focus when the drawer opens. On touch
// devices text inputs are skipped so opening does not raise the keyboard.
func initialFocus(content *dom.Node, mobile bool) *dom.Node {
	for _, n := range content.FocusableElements() {
		if mobile && n.IsTextInput() {
			continue
		}
		return n
	}
	return nil
}
