package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxui/lib/style"
)

// propsFile is the YAML form of a prop bag: the style intent table plus the
// layout it is resolved for.
//
//	layout: grid
//	columns: "3"
//	gap: "16"
//	tiers:
//	  s:
//	    columns: "1"
//	    hide: true
type propsFile struct {
	Layout      string `yaml:"layout"`
	style.Props `yaml:",inline"`
}

// readProps decodes a props file; path "" or "-" reads r.
func readProps(path string, r io.Reader) (style.Layout, style.Props, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return 0, style.Props{}, err
		}
		defer f.Close()
		r = f
	}

	var pf propsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && err != io.EOF {
		return 0, style.Props{}, fmt.Errorf("decode props: %w", err)
	}

	switch pf.Layout {
	case "", "flex":
		return style.Flex, pf.Props, nil
	case "grid":
		return style.Grid, pf.Props, nil
	}
	return 0, style.Props{}, fmt.Errorf("unknown layout %q (want flex or grid)", pf.Layout)
}
