package lexicon

var defaultStopwords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "of", "to", "in",
	"on", "at", "by", "for", "with", "from", "into", "onto", "over", "under",
	"about", "as", "is", "are", "was", "were", "be", "been", "being", "am",
	"it", "its", "this", "that", "these", "those", "there", "here", "they",
	"them", "their", "we", "our", "you", "your", "he", "she", "his", "her",
	"i", "me", "my", "not", "no", "so", "too", "very", "can", "could", "will",
	"would", "should", "may", "might", "must", "shall", "do", "does", "did",
	"has", "have", "had", "having", "just", "also", "more", "most", "such",
	"than", "which", "who", "whom", "what", "when", "where", "why", "how",
	"all", "any", "each", "few", "other", "some", "only", "own", "same",
	"both", "while", "because", "although", "after", "before", "during",
	"out", "up", "down", "off", "again", "further", "once", "now",
}

var defaultFunctionWords = []string{
	"the", "a", "an", "is", "are", "was", "were", "be", "in", "of", "to",
	"and", "for", "on", "with", "it", "this", "that", "as", "by", "at",
	"from", "or", "has", "have", "will", "can", "we", "you", "they",
}

// Multi-word entries come first so they win over their single-word parts.
var defaultSubstitutions = []Substitution{
	{From: "in order to", To: "to"},
	{From: "prior to", To: "before"},
	{From: "a number of", To: "some"},
	{From: "due to the fact that", To: "because"},
	{From: "in addition", To: "also"},
	{From: "utilize", To: "use"},
	{From: "utilizes", To: "uses"},
	{From: "utilization", To: "use"},
	{From: "approximately", To: "about"},
	{From: "facilitate", To: "help"},
	{From: "demonstrate", To: "show"},
	{From: "demonstrates", To: "shows"},
	{From: "commence", To: "start"},
	{From: "initiate", To: "start"},
	{From: "terminate", To: "end"},
	{From: "subsequently", To: "later"},
	{From: "additionally", To: "also"},
	{From: "consequently", To: "so"},
	{From: "nevertheless", To: "still"},
	{From: "numerous", To: "many"},
	{From: "sufficient", To: "enough"},
	{From: "assistance", To: "help"},
	{From: "purchase", To: "buy"},
	{From: "require", To: "need"},
	{From: "requires", To: "needs"},
	{From: "obtain", To: "get"},
	{From: "endeavor", To: "try"},
	{From: "methodology", To: "method"},
	{From: "comprehend", To: "understand"},
	{From: "individuals", To: "people"},
	{From: "modification", To: "change"},
	{From: "objective", To: "goal"},
	{From: "optimize", To: "improve"},
	{From: "leverage", To: "use"},
	{From: "ascertain", To: "find out"},
	{From: "accomplish", To: "do"},
	{From: "anticipate", To: "expect"},
	{From: "beneficial", To: "helpful"},
	{From: "component", To: "part"},
	{From: "components", To: "parts"},
	{From: "fundamental", To: "basic"},
	{From: "indicate", To: "show"},
	{From: "indicates", To: "shows"},
	{From: "participate", To: "take part"},
	{From: "significant", To: "big"},
	{From: "substantial", To: "large"},
	{From: "implement", To: "carry out"},
	{From: "sophisticated", To: "advanced"},
	{From: "inquire", To: "ask"},
	{From: "magnitude", To: "size"},
}

var defaultConjunctions = []string{"and", "but", "because", "although", "while"}

var (
	defaultGreetings      = []string{"Hey there!", "Hi friend!", "Hello!", "Quick update!"}
	defaultGreetingEmojis = []string{"👋", "😊", "✨", "🙌"}
	defaultConfirmations  = []string{
		"Hope that helps!",
		"Makes sense, right?",
		"Let me know if you have questions!",
		"Pretty simple, right?",
	}
	defaultClosingEmojis = []string{"👍", "🙂", "✅", "💡"}
)

var (
	defaultRegionalIntros   = []string{"Dekho yaar,", "Suno yaar,", "Arre bhai,", "Acha toh suno,"}
	defaultRegionalClosings = []string{
		"Samjhe? Bas itna hi hai!",
		"Simple hai na, yaar?",
		"Bas, yahi baat hai boss!",
	}
	defaultCodeSwitch = []string{
		"yaar", "samjhe", "acha", "accha", "arre", "bhai", "dekho", "suno",
		"bas", "hai", "na", "toh", "boss", "ji", "matlab",
	}
)
