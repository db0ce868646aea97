package show

import "os"

// Show renders src in the default debugging form: double-quoted,
// with embedded double quotes escaped.
func Show(src Source) string {
	return Printer{Quote: QUOTE_DOUBLE}.Sprint(src)
}

// ShowBytes is Show for a plain byte slice.
func ShowBytes(src []byte) string {
	return Printer{Quote: QUOTE_DOUBLE}.SprintBytes(src)
}

// Println writes the double-quoted rendering of src and a newline
// to standard output.
func Println(src Source) error {
	_, err := os.Stdout.WriteString(Show(src) + "\n")
	return err
}
