package genio

// Writer adapts an output callback into an io.Writer and io.StringWriter
// so that print-like helpers such as fmt.Fprintf can target it.
type Writer struct {
	emit func(v string) error
}

func NewWriter(emit func(v string) error) *Writer {
	return &Writer{emit}
}

func (w *Writer) Write(p []byte) (int, error) {
	if err := w.emit(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *Writer) WriteString(v string) (int, error) {
	if err := w.emit(v); err != nil {
		return 0, err
	}
	return len(v), nil
}
