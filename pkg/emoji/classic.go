package emoji

// Classic returns the 57 symbols resembling the original Dobble deck, enough
// for a full deck with 8 symbols per card (order 7: 57 cards, 57 symbols).
// The returned slice is a fresh copy; callers may reorder it freely.
func Classic() []Symbol {
	out := make([]Symbol, len(classic))
	copy(out, classic)
	return out
}

var classic = []Symbol{
	{Name: "anchor", Mode: ModeColor, Group: "travel-places", Hex: "2693"},
	{Name: "baby bottle", Mode: ModeColor, Group: "food-drink", Hex: "1F37C"},
	{Name: "bomb", Mode: ModeColor, Group: "smileys-emotion", Hex: "1F4A3"},
	{Name: "cactus", Mode: ModeColor, Group: "animals-nature", Hex: "1F335"},
	{Name: "candle", Mode: ModeColor, Group: "objects", Hex: "1F56F"},
	{Name: "carrot", Mode: ModeColor, Group: "food-drink", Hex: "1F955"},
	{Name: "cheese wedge", Mode: ModeColor, Group: "food-drink", Hex: "1F9C0"},
	{Name: "chess pawn", Mode: ModeColor, Group: "activities", Hex: "265F"},
	{Name: "classical building", Mode: ModeColor, Group: "travel-places", Hex: "1F3DB"},
	{Name: "clown face", Mode: ModeColor, Group: "smileys-emotion", Hex: "1F921"},
	{Name: "deciduous tree", Mode: ModeColor, Group: "animals-nature", Hex: "1F333"},
	{Name: "dog face", Mode: ModeColor, Group: "animals-nature", Hex: "1F436"},
	{Name: "dolphin", Mode: ModeColor, Group: "animals-nature", Hex: "1F42C"},
	{Name: "dragon", Mode: ModeColor, Group: "animals-nature", Hex: "1F409"},
	{Name: "droplet", Mode: ModeColor, Group: "travel-places", Hex: "1F4A7"},
	{Name: "eye", Mode: ModeColor, Group: "people-body", Hex: "1F441"},
	{Name: "fire", Mode: ModeColor, Group: "travel-places", Hex: "1F525"},
	{Name: "four leaf clover", Mode: ModeColor, Group: "animals-nature", Hex: "1F340"},
	{Name: "front-facing baby chick", Mode: ModeColor, Group: "animals-nature", Hex: "1F425"},
	{Name: "ghost", Mode: ModeColor, Group: "smileys-emotion", Hex: "1F47B"},
	{Name: "gps", Mode: ModeColor, Group: "extras-openmoji", Hex: "E1CD"},
	{Name: "green apple", Mode: ModeColor, Group: "food-drink", Hex: "1F34F"},
	{Name: "grinning cat with smiling eyes", Mode: ModeColor, Group: "smileys-emotion", Hex: "1F638"},
	{Name: "hammer", Mode: ModeColor, Group: "objects", Hex: "1F528"},
	{Name: "hand with fingers splayed", Mode: ModeColor, Group: "people-body", Hex: "1F590"},
	{Name: "high voltage", Mode: ModeColor, Group: "travel-places", Hex: "26A1"},
	{Name: "ice", Mode: ModeColor, Group: "food-drink", Hex: "1F9CA"},
	{Name: "intricate", Mode: ModeColor, Group: "extras-openmoji", Hex: "E24B"},
	{Name: "lady beetle", Mode: ModeColor, Group: "animals-nature", Hex: "1F41E"},
	{Name: "last quarter moon face", Mode: ModeColor, Group: "travel-places", Hex: "1F31C"},
	{Name: "light bulb", Mode: ModeColor, Group: "objects", Hex: "1F4A1"},
	{Name: "locked", Mode: ModeColor, Group: "objects", Hex: "1F512"},
	{Name: "maple leaf", Mode: ModeColor, Group: "animals-nature", Hex: "1F341"},
	{Name: "mouth", Mode: ModeColor, Group: "people-body", Hex: "1F444"},
	{Name: "musical score", Mode: ModeColor, Group: "objects", Hex: "1F3BC"},
	{Name: "no entry", Mode: ModeColor, Group: "symbols", Hex: "26D4"},
	{Name: "old key", Mode: ModeColor, Group: "objects", Hex: "1F5DD"},
	{Name: "oncoming taxi", Mode: ModeColor, Group: "travel-places", Hex: "1F696"},
	{Name: "pencil", Mode: ModeColor, Group: "objects", Hex: "270F"},
	{Name: "person standing", Mode: ModeColor, Group: "people-body", Hex: "1F9CD"},
	{Name: "red exclamation mark", Mode: ModeColor, Group: "symbols", Hex: "2757"},
	{Name: "red heart", Mode: ModeColor, Group: "smileys-emotion", Hex: "2764"},
	{Name: "red question mark", Mode: ModeColor, Group: "symbols", Hex: "2753"},
	{Name: "rosette", Mode: ModeColor, Group: "animals-nature", Hex: "1F3F5"},
	{Name: "scissors", Mode: ModeColor, Group: "objects", Hex: "2702"},
	{Name: "skull and crossbones", Mode: ModeColor, Group: "smileys-emotion", Hex: "2620"},
	{Name: "snowflake", Mode: ModeColor, Group: "travel-places", Hex: "2744"},
	{Name: "snowman without snow", Mode: ModeColor, Group: "travel-places", Hex: "26C4"},
	{Name: "spider web", Mode: ModeColor, Group: "animals-nature", Hex: "1F578"},
	{Name: "spider", Mode: ModeColor, Group: "animals-nature", Hex: "1F577"},
	{Name: "sun", Mode: ModeColor, Group: "travel-places", Hex: "2600"},
	{Name: "sunglasses", Mode: ModeColor, Group: "objects", Hex: "1F576"},
	{Name: "t-rex", Mode: ModeColor, Group: "animals-nature", Hex: "1F996"},
	{Name: "timer", Mode: ModeColor, Group: "extras-openmoji", Hex: "E0AB"},
	{Name: "turtle", Mode: ModeColor, Group: "animals-nature", Hex: "1F422"},
	{Name: "yin yang", Mode: ModeColor, Group: "symbols", Hex: "262F"},
	{Name: "zebra", Mode: ModeColor, Group: "animals-nature", Hex: "1F993"},
}
