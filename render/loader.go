package render

import (
	"bytes"
	"io"
	"path"

	"github.com/flosch/pongo2/v6"
)

// rootLoader resolves every template name, including extends and include
// references, against the root of the wrapped loader's filesystem rather than
// the directory of the referencing template. It also drops one trailing
// newline (\n, \r\n or \r) from each template source.
type rootLoader struct {
	pongo2.TemplateLoader
}

func (l rootLoader) Abs(_, name string) string {
	return path.Clean(name)
}

func (l rootLoader) Get(name string) (io.Reader, error) {
	r, err := l.TemplateLoader.Get(name)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(trimTrailingNewline(data)), nil
}

func trimTrailingNewline(data []byte) []byte {
	switch {
	case bytes.HasSuffix(data, []byte("\r\n")):
		return data[:len(data)-2]
	case bytes.HasSuffix(data, []byte("\n")), bytes.HasSuffix(data, []byte("\r")):
		return data[:len(data)-1]
	}
	return data
}
