package tui

import (
	"fmt"
	"strings"

	"github.com/lox/nertsforbots/internal/nerts"
)

// RenderCard renders a single card, colored by suit, or a face-down marker
func RenderCard(c nerts.TaggedCard) string {
	if !c.FaceUp {
		return DimStyle.Render("▒▒")
	}
	if c.IsRed() {
		return RedCardStyle.Render(c.Card.String())
	}
	return BlackCardStyle.Render(c.Card.String())
}

// RenderState renders a full game snapshot as styled text. The deal command
// and the watch view share it.
func RenderState(s *nerts.State) string {
	var b strings.Builder

	b.WriteString(renderFoundations(s))
	b.WriteString("\n")

	for _, id := range s.Order {
		b.WriteString(renderPlayer(s, id))
	}

	return b.String()
}

func renderFoundations(s *nerts.State) string {
	var b strings.Builder
	b.WriteString(DimStyle.Render("foundations "))
	for _, f := range s.Foundations {
		if top, ok := f.Top(); ok {
			b.WriteString(RenderCard(top))
		} else {
			b.WriteString(DimStyle.Render("··"))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}

func renderPlayer(s *nerts.State, id nerts.PlayerID) string {
	ps := s.Players[id]
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		PlayerNameStyle.Render(string(id)),
		ScoreStyle.Render(fmt.Sprintf("score=%d", ps.Score)))

	b.WriteString("  nerts ")
	fmt.Fprintf(&b, "%s(%d) ", nertsTop(ps), len(ps.Nerts))

	b.WriteString(" tableau ")
	for col := range ps.Tableau {
		if top, ok := columnTop(ps.Tableau[col]); ok {
			fmt.Fprintf(&b, "%s(%d) ", RenderCard(top), len(ps.Tableau[col]))
		} else {
			b.WriteString(DimStyle.Render("··(0) "))
		}
	}

	b.WriteString(" stock ")
	fmt.Fprintf(&b, "%s ", DimStyle.Render(fmt.Sprintf("%d", len(ps.Stock))))

	b.WriteString(" waste ")
	if top, ok := columnTop(ps.Waste); ok {
		fmt.Fprintf(&b, "%s(%d)", RenderCard(top), len(ps.Waste))
	} else {
		b.WriteString(DimStyle.Render("··(0)"))
	}
	b.WriteString("\n")

	return b.String()
}

func nertsTop(ps *nerts.PlayerState) string {
	if top, ok := columnTop(ps.Nerts); ok {
		return RenderCard(top)
	}
	return WinnerStyle.Render("∅")
}

func columnTop(pile []nerts.TaggedCard) (nerts.TaggedCard, bool) {
	if len(pile) == 0 {
		return nerts.TaggedCard{}, false
	}
	return pile[len(pile)-1], true
}
