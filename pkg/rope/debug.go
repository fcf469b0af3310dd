package rope

import (
	"strconv"

	"github.com/tidwall/sjson"
)

// debug.go builds a JSON dump of a rope's tree shape for introspection
// during development: node kind, child count for internal nodes, and for
// leaves their byte length and a preview of content. Built with tidwall/sjson rather than encoding/json's struct
// marshaling because the tree's shape is only known at walk time -- each
// node contributes its fields by path, the same way sjson's own examples
// construct documents incrementally instead of building an intermediate
// struct tree solely to marshal it once.
func (r *Rope) DebugJSON() (string, error) {
	doc := `{}`
	var err error
	doc, err = sjson.Set(doc, "len_bytes", r.LenBytes())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "len_chars", r.LenChars())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "len_lines_lf", r.LenLines(LineLF))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "build_id", r.buildID.String())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "generation", r.generation.String())
	if err != nil {
		return "", err
	}
	doc, err = debugNode(doc, "root", r.root, 0)
	if err != nil {
		return "", err
	}
	return doc, nil
}

func debugNode(doc, path string, h *nodeHandle, depth int) (string, error) {
	var err error
	if h == nil {
		return sjson.Set(doc, path, nil)
	}
	if h.isLeaf() {
		data := h.leaf.bytes()
		preview := data
		truncated := false
		if len(preview) > 48 {
			preview = preview[:48]
			truncated = true
		}
		doc, err = sjson.Set(doc, path+".kind", "leaf")
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".bytes", len(data))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".preview", string(preview))
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, path+".truncated", truncated)
	}

	doc, err = sjson.Set(doc, path+".kind", "internal")
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, path+".children", h.internal.n)
	if err != nil {
		return "", err
	}
	for i := 0; i < h.internal.n; i++ {
		childPath := path + ".kids." + strconv.Itoa(i)
		doc, err = debugNode(doc, childPath, h.internal.handles[i], depth+1)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
