package cost

// Default diamond pricing for kinds without an override table.
// The first slot paid for in a range costs BaseDiamondCost and every further
// slot in the same range costs DiamondCostStep more than the previous one.
const (
	BaseDiamondCost = 6 // diamonds for the first slot of a range
	DiamondCostStep = 3 // added per subsequent slot in the range
)
