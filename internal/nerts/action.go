package nerts

import "fmt"

// ActionKind identifies one of the seven moves a player can attempt
type ActionKind int

const (
	// StockDraw turns up to three stock cards onto the waste, or recycles
	// the waste back into the stock when the stock is empty
	StockDraw ActionKind = iota
	// WasteToTableau moves the top waste card onto a tableau column
	WasteToTableau
	// WasteToFoundation moves the top waste card onto a foundation slot
	WasteToFoundation
	// TableauToTableau moves a face-up run between tableau columns
	TableauToTableau
	// TableauToFoundation moves a column's top card onto a foundation slot
	TableauToFoundation
	// NertsToTableau moves the top nerts card onto a tableau column
	NertsToTableau
	// NertsToFoundation moves the top nerts card onto a foundation slot
	NertsToFoundation
)

// String returns the string representation of an action kind
func (k ActionKind) String() string {
	switch k {
	case StockDraw:
		return "stock_draw"
	case WasteToTableau:
		return "waste_to_tableau"
	case WasteToFoundation:
		return "waste_to_foundation"
	case TableauToTableau:
		return "tableau_to_tableau"
	case TableauToFoundation:
		return "tableau_to_foundation"
	case NertsToTableau:
		return "nerts_to_tableau"
	case NertsToFoundation:
		return "nerts_to_foundation"
	default:
		return "unknown"
	}
}

// Action is one proposed move. Fields beyond Player and Kind are read per
// kind: FromColumn and Card name the source run for TableauToTableau (Card
// is the run's deepest card), ToColumn names the destination column for
// tableau targets, Foundation the destination slot for foundation targets.
type Action struct {
	Player     PlayerID
	Kind       ActionKind
	FromColumn int
	ToColumn   int
	Foundation int
	Card       CardID
}

// String returns a compact description for logs
func (a Action) String() string {
	switch a.Kind {
	case StockDraw:
		return fmt.Sprintf("%s %s", a.Player, a.Kind)
	case WasteToTableau, NertsToTableau:
		return fmt.Sprintf("%s %s col=%d", a.Player, a.Kind, a.ToColumn)
	case WasteToFoundation, NertsToFoundation:
		return fmt.Sprintf("%s %s slot=%d", a.Player, a.Kind, a.Foundation)
	case TableauToTableau:
		return fmt.Sprintf("%s %s card=%d col=%d->%d", a.Player, a.Kind, a.Card, a.FromColumn, a.ToColumn)
	case TableauToFoundation:
		return fmt.Sprintf("%s %s col=%d slot=%d", a.Player, a.Kind, a.FromColumn, a.Foundation)
	default:
		return fmt.Sprintf("%s unknown", a.Player)
	}
}
