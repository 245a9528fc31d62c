// Package index renders the compressed skills index: one line per
// category with comma-joined display names, wrapped in a fixed preamble
// and epilogue. The output is line-oriented plain text aimed at coding
// assistants, not humans — it is later embedded in a fenced block inside
// the README, but carries no markup of its own.
package index

import (
	"strings"

	"github.com/dotnet-artisans/skillindex/pkg/classify"
	"github.com/dotnet-artisans/skillindex/pkg/entry"
)

const (
	// preamble identifies the index format and tells the consumer how to
	// use it. Both lines are part of the index contract; tools diff
	// against the exact shape.
	headerLine = "dotnet-artisans skills index v1"
	flowLine   = "flow: pick a name from a category line, then read skills/<reference>/SKILL.md (agents/<reference>/AGENT.md for agents)"

	epilogueLine = "end of index"
)

// Render produces the full index block from resolved skill and agent
// entries. Category lines appear in classify.DisplayOrder, every
// category always present even when empty, names in manifest order.
// Skill entries whose reference matches no classification rule are
// omitted entirely.
func Render(skills, agents []entry.Entry) string {
	names := make(map[classify.Category][]string)
	for _, e := range skills {
		cat, ok := classify.Classify(e.Reference)
		if !ok {
			continue
		}
		names[cat] = append(names[cat], e.DisplayName)
	}

	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteString("\n")
	b.WriteString(flowLine)
	b.WriteString("\n")

	for _, cat := range classify.DisplayOrder {
		writeLine(&b, string(cat), names[cat])
	}

	agentNames := make([]string, 0, len(agents))
	for _, e := range agents {
		agentNames = append(agentNames, e.DisplayName)
	}
	writeLine(&b, string(classify.CategoryAgents), agentNames)

	b.WriteString(epilogueLine)
	b.WriteString("\n")
	return b.String()
}

func writeLine(b *strings.Builder, key string, names []string) {
	b.WriteString(key)
	b.WriteString(":{")
	b.WriteString(strings.Join(names, ","))
	b.WriteString("}\n")
}
