package pf

import "strings"

// The three line patterns that make up the include block in pf.conf. The
// anchor declaration pattern is a prefix of the load directive, so any
// line mentioning either matches via substring.
const (
	includeComment = "# SecureMacOS pf anchor"
	anchorLine     = `anchor "` + AnchorName + `"`
	loadLine       = `load anchor "` + AnchorName + `" from "` + AnchorPath + `"`
)

// HasAnchorReference reports whether conf already references the
// SecureMacOS anchor.
func HasAnchorReference(conf string) bool {
	return strings.Contains(conf, anchorLine)
}

// AppendAnchorBlock returns conf with the include block appended. Callers
// guard with HasAnchorReference so pf.conf never carries the block twice.
func AppendAnchorBlock(conf string) string {
	if conf != "" && !strings.HasSuffix(conf, "\n") {
		conf += "\n"
	}
	return conf + "\n" + includeComment + "\n" + anchorLine + "\n" + loadLine + "\n"
}

// StripAnchorLines removes every line containing one of the include-block
// patterns and reports how many lines were dropped. Content without any
// reference comes back unchanged.
func StripAnchorLines(conf string) (string, int) {
	lines := strings.Split(conf, "\n")
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if strings.Contains(line, includeComment) || strings.Contains(line, anchorLine) {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), removed
}
