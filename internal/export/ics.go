package export

import (
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// ICSExporter emits one VEVENT per schedule block, titled "<item> (<Day>)".
type ICSExporter struct{}

func (ICSExporter) Ext() string         { return "ics" }
func (ICSExporter) ContentType() string { return "text/calendar" }

func (ICSExporter) Write(w io.Writer, p Plan) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	for _, b := range p.Blocks {
		ev := cal.AddEvent(uuid.NewString())
		ev.SetSummary(fmt.Sprintf("%s (%s)", b.Item, b.Day))
		ev.SetStartAt(b.Start)
		ev.SetEndAt(b.End)
	}
	return cal.SerializeTo(w)
}
