package header

import "fmt"

// MissingMacroError is returned when a required macro has no
// "#define NAME <digits>" line in the header text.
type MissingMacroError struct {
	Name string
}

func (e *MissingMacroError) Error() string {
	return fmt.Sprintf("missing macro: %s", e.Name)
}

// InvalidMacroError is returned when a macro's digits cannot be represented
// as an int.
type InvalidMacroError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidMacroError) Error() string {
	return fmt.Sprintf("invalid value %q for macro %s: %v", e.Value, e.Name, e.Err)
}

func (e *InvalidMacroError) Unwrap() error {
	return e.Err
}

// IOError is returned when the header file cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read header %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
