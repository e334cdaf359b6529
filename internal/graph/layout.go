package graph

// Grid spacing for the visualization layout, in canvas units.
const (
	columnSpacing = 250
	rowSpacing    = 150
)

// AssignPositions attaches a deterministic grid position to every entity:
// categories occupy columns in first-seen order, entities occupy rows within
// their category. Presentation only; dependencies and relationships are
// untouched.
func AssignPositions(entities []Entity) {
	columns := make(map[Category]int)
	rows := make(map[Category]int)

	for i := range entities {
		e := &entities[i]
		column, seen := columns[e.Category]
		if !seen {
			column = len(columns)
			columns[e.Category] = column
		}
		e.Position = &Position{
			X: column * columnSpacing,
			Y: rows[e.Category] * rowSpacing,
		}
		rows[e.Category]++
	}
}
