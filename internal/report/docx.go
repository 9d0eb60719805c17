package report

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Content is everything rendered into a meeting report.
type Content struct {
	Title   string
	Date    string
	Summary string
	Tasks   []tasks.Task
}

// WriteDocx renders a meeting report with a summary section and one
// paragraph per action item.
func WriteDocx(c Content, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), c.Title, true, 16)
	if c.Date != "" {
		addStyledRun(doc.AddParagraph(""), c.Date, false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	summary := strings.TrimSpace(c.Summary)
	if summary == "" {
		summary = "No summary available."
	}
	addStyledRun(doc.AddParagraph(""), summary, false, fontSize)

	addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
	if len(c.Tasks) == 0 {
		addStyledRun(doc.AddParagraph(""), "No action items found.", false, fontSize)
	}
	for i, t := range c.Tasks {
		addTask(doc.AddParagraph(""), i+1, t)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

func addTask(p *docx.Paragraph, n int, t tasks.Task) {
	p.AddText(fmt.Sprintf("%d. %s", n, t.Description)).Font(fontName).Size(fontSize).Color("000000")

	meta := fmt.Sprintf(" (%s, %s, ", t.AssignedTo, t.Deadline)
	p.AddText(meta).Font(fontName).Size(fontSize).Color("555555")

	run := p.AddText(string(t.Priority)).Font(fontName).Size(fontSize).Color(priorityColor(t.Priority))
	if t.Priority == tasks.PriorityHigh {
		run.Bold(true)
	}
	p.AddText(")").Font(fontName).Size(fontSize).Color("555555")
}

func priorityColor(p tasks.Priority) string {
	switch p {
	case tasks.PriorityHigh:
		return "C00000"
	case tasks.PriorityLow:
		return "2E7D32"
	default:
		return "000000"
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
