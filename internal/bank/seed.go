package bank

// Difficulty labels used by the built-in bank.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

var defaultBank = New(seedQuestions)

// Default returns the built-in CSS question bank.
func Default() Bank {
	return defaultBank
}

var seedQuestions = []Question{
	// Selectors
	{Skill: "Selectors", Difficulty: DifficultyBeginner,
		Question: "Which selector targets an element with id=\"header\"?",
		Options:  []string{".header", "#header", "header", "*header"},
		Correct:  "#header"},
	{Skill: "Selectors", Difficulty: DifficultyBeginner,
		Question: "Which selector targets every element with class=\"note\"?",
		Options:  []string{"#note", "note", ".note", "@note"},
		Correct:  ".note"},
	{Skill: "Selectors", Difficulty: DifficultyBeginner,
		Question: "What does the universal selector * match?",
		Options:  []string{"Only the body element", "Every element", "Only block elements", "Only elements with a class"},
		Correct:  "Every element"},
	{Skill: "Selectors", Difficulty: DifficultyBeginner,
		Question: "How do you apply one rule to both h1 and h2 elements?",
		Options:  []string{"h1 h2", "h1 + h2", "h1, h2", "h1 > h2"},
		Correct:  "h1, h2"},
	{Skill: "Selectors", Difficulty: DifficultyIntermediate,
		Question: "Which combinator selects only direct children?",
		Options:  []string{"A space", ">", "+", "~"},
		Correct:  ">"},
	{Skill: "Selectors", Difficulty: DifficultyIntermediate,
		Question: "What does a + b select?",
		Options:  []string{"Every b inside a", "The b immediately following a sibling a", "Every b sibling after a", "Both a and b"},
		Correct:  "The b immediately following a sibling a"},
	{Skill: "Selectors", Difficulty: DifficultyIntermediate,
		Question: "Which selector matches inputs whose type attribute is exactly \"text\"?",
		Options:  []string{"input[type=\"text\"]", "input.type-text", "input:text", "input#text"},
		Correct:  "input[type=\"text\"]"},
	{Skill: "Selectors", Difficulty: DifficultyAdvanced,
		Question: "Which selector has the highest specificity?",
		Options:  []string{"div p", ".menu a", "#nav", "ul li a"},
		Correct:  "#nav"},
	{Skill: "Selectors", Difficulty: DifficultyAdvanced,
		Question: "What does li:nth-child(2n+1) select?",
		Options:  []string{"Even list items", "Odd list items", "The second list item", "Every list item after the first"},
		Correct:  "Odd list items"},
	{Skill: "Selectors", Difficulty: DifficultyAdvanced,
		Question: "What does :is(.a, .b) contribute to specificity?",
		Options:  []string{"Nothing", "The lowest argument's specificity", "The highest argument's specificity", "The sum of all arguments"},
		Correct:  "The highest argument's specificity"},

	// Box Model
	{Skill: "Box Model", Difficulty: DifficultyBeginner,
		Question: "Which property sets the space between content and border?",
		Options:  []string{"margin", "padding", "spacing", "gap"},
		Correct:  "padding"},
	{Skill: "Box Model", Difficulty: DifficultyBeginner,
		Question: "Which property sets the space outside the border?",
		Options:  []string{"margin", "padding", "outline-offset", "inset"},
		Correct:  "margin"},
	{Skill: "Box Model", Difficulty: DifficultyBeginner,
		Question: "What is the default value of box-sizing?",
		Options:  []string{"border-box", "padding-box", "content-box", "margin-box"},
		Correct:  "content-box"},
	{Skill: "Box Model", Difficulty: DifficultyIntermediate,
		Question: "With box-sizing: border-box, what does width include?",
		Options:  []string{"Content only", "Content and padding", "Content, padding and border", "Content, padding, border and margin"},
		Correct:  "Content, padding and border"},
	{Skill: "Box Model", Difficulty: DifficultyIntermediate,
		Question: "What is margin collapsing?",
		Options:  []string{"Negative margins being ignored", "Adjacent vertical margins combining into one", "Margins turning into padding", "Horizontal margins merging"},
		Correct:  "Adjacent vertical margins combining into one"},
	{Skill: "Box Model", Difficulty: DifficultyIntermediate,
		Question: "How is margin: 10px 20px applied?",
		Options:  []string{"10px top/bottom, 20px left/right", "10px left/right, 20px top/bottom", "10px top, 20px bottom", "10px all sides, 20px max"},
		Correct:  "10px top/bottom, 20px left/right"},
	{Skill: "Box Model", Difficulty: DifficultyAdvanced,
		Question: "Which of these prevents a parent's margin from collapsing with its first child's?",
		Options:  []string{"display: block", "padding-top: 1px", "margin: auto", "width: 100%"},
		Correct:  "padding-top: 1px"},
	{Skill: "Box Model", Difficulty: DifficultyAdvanced,
		Question: "Does outline affect an element's layout size?",
		Options:  []string{"Yes, like border", "No, it is drawn outside without taking space", "Only with border-box", "Only on inline elements"},
		Correct:  "No, it is drawn outside without taking space"},

	// Flexbox
	{Skill: "Flexbox", Difficulty: DifficultyBeginner,
		Question: "Which declaration makes an element a flex container?",
		Options:  []string{"display: flex", "flex: 1", "position: flex", "float: flex"},
		Correct:  "display: flex"},
	{Skill: "Flexbox", Difficulty: DifficultyBeginner,
		Question: "Which property aligns flex items along the main axis?",
		Options:  []string{"align-items", "justify-content", "align-content", "vertical-align"},
		Correct:  "justify-content"},
	{Skill: "Flexbox", Difficulty: DifficultyBeginner,
		Question: "What is the default flex-direction?",
		Options:  []string{"column", "row", "row-reverse", "column-reverse"},
		Correct:  "row"},
	{Skill: "Flexbox", Difficulty: DifficultyIntermediate,
		Question: "Which property lets flex items move onto multiple lines?",
		Options:  []string{"flex-flow: nowrap", "flex-wrap: wrap", "white-space: wrap", "overflow: wrap"},
		Correct:  "flex-wrap: wrap"},
	{Skill: "Flexbox", Difficulty: DifficultyIntermediate,
		Question: "What does flex: 1 expand to?",
		Options:  []string{"1 0 auto", "1 1 0%", "0 1 auto", "1 1 auto"},
		Correct:  "1 1 0%"},
	{Skill: "Flexbox", Difficulty: DifficultyIntermediate,
		Question: "Which property overrides align-items for a single flex item?",
		Options:  []string{"align-self", "justify-self", "place-self", "order"},
		Correct:  "align-self"},
	{Skill: "Flexbox", Difficulty: DifficultyAdvanced,
		Question: "What is the default min-width of a flex item in a row container?",
		Options:  []string{"0", "auto", "100%", "min-content is ignored"},
		Correct:  "auto"},
	{Skill: "Flexbox", Difficulty: DifficultyAdvanced,
		Question: "Which property controls how items shrink relative to siblings?",
		Options:  []string{"flex-grow", "flex-basis", "flex-shrink", "flex-size"},
		Correct:  "flex-shrink"},

	// Grid
	{Skill: "Grid", Difficulty: DifficultyBeginner,
		Question: "Which declaration creates a grid container?",
		Options:  []string{"display: grid", "grid: on", "display: table", "layout: grid"},
		Correct:  "display: grid"},
	{Skill: "Grid", Difficulty: DifficultyBeginner,
		Question: "Which property defines the column tracks of a grid?",
		Options:  []string{"grid-columns", "grid-template-columns", "columns", "grid-column"},
		Correct:  "grid-template-columns"},
	{Skill: "Grid", Difficulty: DifficultyBeginner,
		Question: "What does the fr unit represent?",
		Options:  []string{"A fixed pixel size", "A fraction of the free space", "Font-relative size", "Frame rate"},
		Correct:  "A fraction of the free space"},
	{Skill: "Grid", Difficulty: DifficultyIntermediate,
		Question: "What does repeat(3, 1fr) produce?",
		Options:  []string{"One track three times wider", "Three equal tracks", "Three rows of 1px", "A track repeated until full"},
		Correct:  "Three equal tracks"},
	{Skill: "Grid", Difficulty: DifficultyIntermediate,
		Question: "Which property sets spacing between grid tracks?",
		Options:  []string{"gap", "margin", "spacing", "gutter"},
		Correct:  "gap"},
	{Skill: "Grid", Difficulty: DifficultyAdvanced,
		Question: "What is the difference between auto-fill and auto-fit in repeat()?",
		Options:  []string{"There is none", "auto-fit collapses empty tracks", "auto-fill only works for rows", "auto-fit requires fixed sizes"},
		Correct:  "auto-fit collapses empty tracks"},
	{Skill: "Grid", Difficulty: DifficultyAdvanced,
		Question: "What does grid-column: 1 / -1 do?",
		Options:  []string{"Spans the first column only", "Spans from the first to the last explicit line", "Hides the item", "Reverses column order"},
		Correct:  "Spans from the first to the last explicit line"},

	// Positioning
	{Skill: "Positioning", Difficulty: DifficultyBeginner,
		Question: "What is the default value of position?",
		Options:  []string{"relative", "absolute", "static", "fixed"},
		Correct:  "static"},
	{Skill: "Positioning", Difficulty: DifficultyBeginner,
		Question: "Which position value keeps an element in place while the page scrolls?",
		Options:  []string{"fixed", "relative", "static", "inherit"},
		Correct:  "fixed"},
	{Skill: "Positioning", Difficulty: DifficultyIntermediate,
		Question: "An absolutely positioned element is placed relative to what?",
		Options:  []string{"The viewport always", "Its nearest positioned ancestor", "Its previous sibling", "The body element always"},
		Correct:  "Its nearest positioned ancestor"},
	{Skill: "Positioning", Difficulty: DifficultyIntermediate,
		Question: "Which property controls stacking order of positioned elements?",
		Options:  []string{"z-index", "order", "stack", "layer"},
		Correct:  "z-index"},
	{Skill: "Positioning", Difficulty: DifficultyAdvanced,
		Question: "Which of these creates a new stacking context?",
		Options:  []string{"opacity: 0.9", "display: block", "margin: 0", "color: red"},
		Correct:  "opacity: 0.9"},
	{Skill: "Positioning", Difficulty: DifficultyAdvanced,
		Question: "When does position: sticky stop sticking?",
		Options:  []string{"Never", "When its containing block scrolls out of view", "After one second", "When z-index is set"},
		Correct:  "When its containing block scrolls out of view"},

	// Typography
	{Skill: "Typography", Difficulty: DifficultyBeginner,
		Question: "Which property changes the text color?",
		Options:  []string{"font-color", "text-color", "color", "foreground"},
		Correct:  "color"},
	{Skill: "Typography", Difficulty: DifficultyBeginner,
		Question: "Which property makes text bold?",
		Options:  []string{"font-style", "font-weight", "text-decoration", "font-variant"},
		Correct:  "font-weight"},
	{Skill: "Typography", Difficulty: DifficultyIntermediate,
		Question: "What is 1rem relative to?",
		Options:  []string{"The parent's font size", "The root element's font size", "The viewport width", "The element's line height"},
		Correct:  "The root element's font size"},
	{Skill: "Typography", Difficulty: DifficultyIntermediate,
		Question: "Which property adds an ellipsis to overflowing single-line text?",
		Options:  []string{"text-overflow", "overflow-wrap", "word-break", "hyphens"},
		Correct:  "text-overflow"},
	{Skill: "Typography", Difficulty: DifficultyAdvanced,
		Question: "What does a unitless line-height like 1.5 inherit?",
		Options:  []string{"The computed pixel value", "The ratio itself", "Nothing, it is not inherited", "The parent's font size"},
		Correct:  "The ratio itself"},
	{Skill: "Typography", Difficulty: DifficultyAdvanced,
		Question: "Which font-display value shows fallback text immediately and swaps when the font loads?",
		Options:  []string{"block", "swap", "optional", "auto"},
		Correct:  "swap"},
}
