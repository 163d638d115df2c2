package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInferTasks_QuarterTags(t *testing.T) {
	note := "Q1 ออกแบบ, Q2 พัฒนา\nไตรมาส 3 Pilot\nq4 ใช้งานจริง"

	tasks := InferTasks(note, time.October)

	assert.Len(t, tasks, 3)

	// First quarter tag on the line wins.
	assert.InDelta(t, 0, tasks[0].Span.StartPct, 0.01)
	assert.InDelta(t, 25, tasks[0].Span.WidthPct, 0.01)

	// Quarter 3 covers grid months 6-8: starts at 50%, spans 3/12.
	assert.InDelta(t, 50, tasks[1].Span.StartPct, 0.01)
	assert.InDelta(t, 25, tasks[1].Span.WidthPct, 0.01)

	assert.InDelta(t, 75, tasks[2].Span.StartPct, 0.01)
}

func TestInferTasks_QuarterPrecedesMonthNames(t *testing.T) {
	// Both a quarter tag and month names appear: the quarter matcher wins.
	tasks := InferTasks("Q2 อบรม มกราคม ถึง มีนาคม", time.October)

	assert.Len(t, tasks, 1)
	assert.InDelta(t, 25, tasks[0].Span.StartPct, 0.01)
	assert.InDelta(t, 25, tasks[0].Span.WidthPct, 0.01)
}

func TestInferTasks_ThaiMonthRange(t *testing.T) {
	tasks := InferTasks("เดือนตุลาคม พ.ศ. 2568 ถึง เดือนมีนาคม พ.ศ. 2569", time.October)

	assert.Len(t, tasks, 1)
	// October..March in an October-start grid: first six columns.
	assert.InDelta(t, 0, tasks[0].Span.StartPct, 0.01)
	assert.InDelta(t, 50, tasks[0].Span.WidthPct, 0.01)
}

func TestInferTasks_FirstAndLastMentionBound(t *testing.T) {
	// Three mentions on one line: the span runs first-detected through
	// last-detected regardless of the months in between.
	tasks := InferTasks("ประชุม พ.ย. และ ธ.ค. แล้วสรุป ม.ค.", time.October)

	assert.Len(t, tasks, 1)
	// Nov..Jan: fiscal positions 1..3, width 3 months.
	assert.InDelta(t, 100.0/12, tasks[0].Span.StartPct, 0.01)
	assert.InDelta(t, 25, tasks[0].Span.WidthPct, 0.01)
}

func TestInferTasks_MixedLanguageAndNumeric(t *testing.T) {
	tasks := InferTasks("kickoff October แล้วปิดงาน 3/2569", time.October)

	assert.Len(t, tasks, 1)
	assert.InDelta(t, 0, tasks[0].Span.StartPct, 0.01)
	assert.InDelta(t, 50, tasks[0].Span.WidthPct, 0.01)
}

func TestInferTasks_BulletMarkersStripped(t *testing.T) {
	note := "1. วางแผน ต.ค.\n2) จัดซื้อ พ.ย.\n3 - อบรม ธ.ค."

	tasks := InferTasks(note, time.October)

	assert.Len(t, tasks, 3)
	assert.Equal(t, "วางแผน ต.ค.", tasks[0].Label)
	assert.Equal(t, "จัดซื้อ พ.ย.", tasks[1].Label)
	assert.Equal(t, "อบรม ธ.ค.", tasks[2].Label)
	for i, task := range tasks {
		assert.NotNil(t, task.Span, "task %d", i)
	}
}

func TestInferTasks_NoMatchStillListed(t *testing.T) {
	note := "จัดเตรียมเอกสารประกอบ\nQ1 วางแผน"

	tasks := InferTasks(note, time.October)

	assert.Len(t, tasks, 2)
	assert.Nil(t, tasks[0].Span)
	assert.Equal(t, "จัดเตรียมเอกสารประกอบ", tasks[0].Label)
	assert.NotNil(t, tasks[1].Span)
}

func TestInferTasks_BlankAndEmptyLines(t *testing.T) {
	assert.Empty(t, InferTasks("", time.October))
	assert.Empty(t, InferTasks("\n  \n\r\n", time.October))
}

func TestInferTasks_ToneCycles(t *testing.T) {
	note := "a\nb\nc\nd\ne\nf\ng\nh"

	tasks := InferTasks(note, time.October)

	assert.Len(t, tasks, 8)
	for i, task := range tasks {
		assert.Equal(t, i%PaletteSize, task.Tone)
	}
}

func TestInferTasks_SpansStayInsideGrid(t *testing.T) {
	notes := []string{
		"Q4 สรุปผล",
		"กันยายน ถึง กันยายน",
		"12/2568 - 9/2569",
		"ธ.ค. ถึง พ.ย.",
	}
	for _, note := range notes {
		for _, task := range InferTasks(note, time.October) {
			if task.Span == nil {
				continue
			}
			assert.GreaterOrEqual(t, task.Span.StartPct, 0.0, note)
			assert.LessOrEqual(t, task.Span.StartPct+task.Span.WidthPct, 100.01, note)
			assert.Greater(t, task.Span.WidthPct, 0.0, note)
		}
	}
}
