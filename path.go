package typedparams

import "strconv"

// ChildPath appends a mapping key or field name segment to a JSON Pointer path.
func ChildPath(base, seg string) string {
	if base == "" || base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}

// IndexPath appends a sequence index segment to a JSON Pointer path.
func IndexPath(base string, i int) string {
	return ChildPath(base, strconv.Itoa(i))
}

// RebaseIssues re-attributes child issues under the given parent path so a
// nested failure keeps its full location instead of being discarded.
func RebaseIssues(base string, child Issues) Issues {
	if len(child) == 0 {
		return nil
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		it.Path = p
		out = AppendIssues(out, it)
	}
	return out
}
