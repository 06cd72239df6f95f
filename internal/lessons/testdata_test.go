package lessons

const validPackJSON = `{
	"title": "Where Does Rain Go?",
	"explanation": "Rain falls from clouds. [VISUAL: clouds dropping rain into a river] The water flows into rivers and lakes.",
	"animation": {
		"description": "Raindrops fall and gather into a river",
		"keyFrames": ["Clouds gather", "Rain falls", "River fills up"],
		"interactionPoints": ["Ask where the water goes"]
	},
	"qa": [
		{"question": "Does rain come from clouds?", "answer": "Yes", "kind": "yesNo"},
		{"question": "Where does rain water collect?", "answer": "Rivers", "kind": "multipleChoice", "options": ["Rivers", "Clouds", "Trees"]}
	],
	"activity": {
		"title": "Make a Rain Jar",
		"materials": ["Glass jar", "Water", "Shaving foam"],
		"steps": ["Fill the jar with water", "Add foam on top", "Drip coloured water onto the foam"],
		"duration": "15 minutes"
	},
	"enrichmentResults": [],
	"narrationScript": "Hello children! Today we learn about rain.",
	"facilitatorNotes": "Use a real jar if possible."
}`
