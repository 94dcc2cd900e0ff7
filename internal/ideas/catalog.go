package ideas

// SafetyNote is attached to every reveal idea.
const SafetyNote = "Remember: Always prioritize safety in your gender reveal. Avoid explosives, fire hazards, or environmentally harmful materials."

// RevealIdea is a suggestion for a gender reveal event
type RevealIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extra       string `json:"extra"`
}

// catalog is built once and never modified; Catalog hands out copies.
var catalog = withSafetyNote([]RevealIdea{
	{
		Title:       "Balloon Box Surprise",
		Description: "Fill a large box with helium balloons in either pink or blue, and open it to reveal the gender!",
	},
	{
		Title:       "Confetti Cannon Pop",
		Description: "Use confetti cannons with blue or pink confetti for an explosive gender reveal moment.",
	},
	{
		Title:       "Gender Reveal Cake",
		Description: "Cut into a cake with either blue or pink filling inside to reveal your baby's gender.",
	},
	{
		Title:       "Smoke Bomb Photography",
		Description: "Use colored smoke bombs (pink or blue) for a dramatic outdoor gender reveal photoshoot.",
	},
	{
		Title:       "Paint Splatter Canvas",
		Description: "Throw darts at paint-filled balloons on a canvas to create a gender reveal masterpiece.",
	},
	{
		Title:       "Scratch-Off Cards",
		Description: "Create custom scratch-off cards revealing the gender for family and friends.",
	},
	{
		Title:       "Powder Blasters",
		Description: "Use powder blasters that shoot colored cornstarch for an exciting outdoor reveal.",
	},
	{
		Title:       "Sibling Surprise",
		Description: "Have older siblings open a gift box with colored items to announce their new brother or sister.",
	},
	{
		Title:       "Piñata Reveal",
		Description: "Break open a piñata filled with blue or pink candies, confetti, or small toys.",
	},
	{
		Title:       "Balloon Dart Game",
		Description: "Set up a board of black balloons, with one special balloon containing colored powder.",
	},
	{
		Title:       "Christmas Ornament",
		Description: "If revealing during winter, use a special ornament that opens to reveal blue or pink inside.",
	},
	{
		Title:       "Silly String Fight",
		Description: "Hand out cans of silly string covered in paper to guests, all revealing the same color.",
	},
	{
		Title:       "Puzzle Announcement",
		Description: "Create a custom puzzle that when completed, reveals the gender of your baby.",
	},
	{
		Title:       "Color Changing Drink",
		Description: "Serve a drink that changes color when an ingredient is added to reveal the gender.",
	},
	{
		Title:       "Pet Announcement",
		Description: "Tie a blue or pink bandana on your pet and let them 'announce' the gender to family and friends.",
	},
})

func withSafetyNote(ideas []RevealIdea) []RevealIdea {
	for i := range ideas {
		ideas[i].Extra = SafetyNote
	}
	return ideas
}

// Catalog returns a copy of every reveal idea in display order
func Catalog() []RevealIdea {
	out := make([]RevealIdea, len(catalog))
	copy(out, catalog)
	return out
}

// Len is the number of ideas in the catalog
func Len() int {
	return len(catalog)
}
