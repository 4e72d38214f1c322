package inspect

import (
	"fmt"
	"io"

	"github.com/avrkit/partscope/internal/registry"
)

// Describe looks up a part by name and writes its identity, source
// location and memory overview table to w. An unknown name is not an
// error: a message is printed and the function returns without a table.
//
// Column widths match the historical layout: name left-justified to 11
// characters, then size, paged, page_size and num_pages right-justified to
// 6, 5, 4 and 3 characters.
func Describe(w io.Writer, reg *registry.Registry, name string) {
	p := reg.Locate(name)
	if p == nil {
		fmt.Fprintf(w, "No part named %s found\n", name)
		return
	}

	pp, err := PartMap(p)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	fmt.Fprintf(w, "AVR part %s found as %s, or %s\n", name, pp["desc"], pp["id"])
	fmt.Fprintf(w, "Definition in %s, line %d\n", pp["config_file"], pp["lineno"])
	fmt.Fprintln(w, "Memory overview:")
	fmt.Fprintln(w, "Name        size   paged   page_size num_pages")
	for _, m := range pp["mem"].([]map[string]any) {
		fmt.Fprintf(w, "%-11s %6d  %-5s   %4d      %3d\n",
			m["desc"], m["size"], fmt.Sprintf("%t", m["paged"]), m["page_size"], m["num_pages"])
	}
	fmt.Fprintln(w)
}
