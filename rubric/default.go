package rubric

// Criterion names in output order.
const (
	ClarifyingQuestions  = "Asks clarifying questions and incorporates hints"
	VerifiesAssumptions  = "Verifies assumptions"
	ExampleInputsOutputs = "Demonstrates understanding w/ example inputs & outputs"
	MultipleApproaches   = "Identifies multiple high-level approaches"
	Complexity           = "Determines time & space complexity of each high-level approach"
	DataStructures       = "Selects appropriate data structure(s) and/or programming approach"
	CodeQuality          = "Writes valid, concise, easy to read, and syntactically correct code for the full algorithm"
	Indentation          = "Uses proper indentation to make code readable"
	Naming               = "Selects descriptive names for variables/functions that follow standard casing conventions"
	ManualTesting        = "Manually tests code by verifying output for sample inputs"
	Debugging            = "Able to track down bugs effectively without resorting to “guessing” what is wrong"
	EdgeCases            = "Solution handles edge cases"
	ThoughtProcess       = "Verbalizes thought process throughout"
	VocalVolume          = "Uses sufficient vocal volume"
	ToneBodyLanguage     = "Maintains positive tone and body language throughout"
	Whiteboard           = "Utilizes all available whiteboard space, or includes ample comments if coding remotely"
)

func need(min int, sets ...string) Need { return Need{Sets: sets, Min: min} }

// simple builds an additive criterion over one keyword set with 4/3/2 minimums.
func simple(name string, keywords []string, mins [3]int, notes [4]string) Criterion {
	return Criterion{
		Name: name,
		Kind: Additive,
		Sets: []KeywordSet{{Name: "signal", Keywords: keywords}},
		Tiers: []Tier{
			{Score: 4, Note: notes[0], Needs: []Need{need(mins[0], "signal")}},
			{Score: 3, Note: notes[1], Needs: []Need{need(mins[1], "signal")}},
			{Score: 2, Note: notes[2], Needs: []Need{need(mins[2], "signal")}},
			{Score: 1, Note: notes[3]},
		},
	}
}

func fixed(name, note string) Criterion {
	return Criterion{Name: name, Kind: Fixed, Note: note}
}

var defaultCriteria = []Criterion{
	{
		Name: ClarifyingQuestions,
		Kind: Additive,
		Sets: []KeywordSet{
			{Name: "clarifying", Keywords: []string{"clarify", "understand", "so if", "just to confirm", "could you explain"}},
			{Name: "hints", Keywords: []string{"based on your hint", "you mentioned", "following your suggestion"}},
		},
		Tiers: []Tier{
			{Score: 4, Note: "Exceptional: Multiple instances of clarifying questions and hint incorporation.", Needs: []Need{need(3, "clarifying", "hints")}},
			{Score: 3, Note: "Proficient: Asks clarifying questions and/or incorporates hints.", Needs: []Need{need(1, "clarifying", "hints")}},
			{Score: 1, Note: "Not Demonstrated: No clarifying questions or hint incorporation."},
		},
	},
	simple(VerifiesAssumptions,
		[]string{"what if", "edge case", "handle", "consider", "input", "null", "empty", "size", "range", "boundary", "negative", "invalid"},
		[3]int{3, 2, 1},
		[4]string{
			"Exceptional: Thoroughly verifies multiple assumptions and constraints.",
			"Proficient: Verifies key assumptions and constraints.",
			"Developing: Attempts to verify some assumptions.",
			"Not Demonstrated: No verification of assumptions.",
		}),
	simple(ExampleInputsOutputs,
		[]string{"for example", "e.g.", "imagine if", "let's say", "input", "output", "result", "so if we give", "then we should get"},
		[3]int{3, 2, 1},
		[4]string{
			"Exceptional: Provides multiple clear and insightful examples.",
			"Proficient: Demonstrates understanding with relevant example inputs and outputs.",
			"Developing: Attempts to use examples but may be unclear or insufficient.",
			"Not Demonstrated: No use of examples to demonstrate understanding.",
		}),
	simple(MultipleApproaches,
		[]string{"approach", "strategy", "method", "way", "alternatively", "instead", "brute force", "efficient", "optimize", "different way"},
		[3]int{3, 2, 1},
		[4]string{
			"Exceptional: Clearly identifies and discusses multiple distinct approaches.",
			"Proficient: Identifies and mentions more than one high-level approach.",
			"Developing: Mentions a potential alternative approach but may not elaborate.",
			"Not Demonstrated: Only considers one approach or no approaches explicitly identified.",
		}),
	simple(Complexity,
		[]string{"time complexity", "space complexity", "o(", "big o", "runtime", "memory", "efficiency", "faster", "slower"},
		[3]int{4, 2, 1},
		[4]string{
			"Exceptional: Accurately and thoroughly analyzes time and space complexity for multiple approaches.",
			"Proficient: Determines time and space complexity for at least one approach.",
			"Developing: Attempts to discuss complexity but may be inaccurate or incomplete.",
			"Not Demonstrated: No discussion of time or space complexity.",
		}),
	{
		Name: DataStructures,
		Kind: Conjunctive,
		Sets: []KeywordSet{
			{Name: "structures", Keywords: []string{"hashmap", "dictionary", "set", "list", "array", "stack", "queue", "tree", "graph", "heap", "linked list"}},
			{Name: "approaches", Keywords: []string{"iterative", "recursive", "dynamic programming", "greedy", "divide and conquer"}},
			{Name: "justification", Keywords: []string{"because", "since", "so", "therefore", "this allows", "for this reason", "efficient for"}},
		},
		Tiers: []Tier{
			{Score: 4, Note: "Exceptional: Selects and justifies appropriate data structures and/or approaches with clear reasoning.",
				Needs: []Need{need(2, "structures", "approaches"), need(1, "justification")}},
			{Score: 3, Note: "Proficient: Selects appropriate data structures and/or approaches and provides some justification.",
				Needs: []Need{need(1, "structures", "approaches"), need(1, "justification")}},
			{Score: 2, Note: "Developing: Mentions data structures or approaches but lacks justification or appropriateness is unclear.",
				Needs: []Need{need(1, "structures", "approaches")}},
			{Score: 1, Note: "Not Demonstrated: No explicit selection or discussion of data structures or approaches."},
		},
	},
	{
		Name: CodeQuality,
		Kind: Conjunctive,
		Sets: []KeywordSet{
			{Name: "description", Keywords: []string{"algorithm", "logic", "implement", "function", "method", "code", "steps", "process", "iterate", "loop", "condition", "variable"}},
			{Name: "clarity", Keywords: []string{"clearly", "easy to understand", "straightforward", "concise", "simple", "readable"}},
		},
		Tiers: []Tier{
			{Score: 4, Note: "Exceptional: Describes code logic clearly, concisely, and indicates a well-structured algorithm.",
				Needs: []Need{need(4, "description"), need(2, "clarity")}},
			{Score: 3, Note: "Proficient: Describes code logic and implies a reasonably clear and structured algorithm.",
				Needs: []Need{need(3, "description"), need(1, "clarity")}},
			{Score: 2, Note: "Developing: Attempts to describe code logic but may be unclear, incomplete or lack structure.",
				Needs: []Need{need(2, "description")}},
			{Score: 1, Note: "Not Demonstrated: Minimal or no description of code logic or algorithm."},
		},
	},
	fixed(Indentation, "N/A: Cannot be assessed from transcript without code."),
	fixed(Naming, "N/A: Cannot be assessed from transcript unless variable/function names are mentioned."),
	simple(ManualTesting,
		[]string{"test", "example", "try", "run", "input", "output", "expect", "verify", "check", "let's see", "okay", "so if", "then"},
		[3]int{3, 2, 1},
		[4]string{
			"Exceptional: Thoroughly tests code with multiple sample inputs and verifies outputs.",
			"Proficient: Manually tests code with at least one sample input and verifies output.",
			"Developing: Attempts to test code but may be superficial or output verification is unclear.",
			"Not Demonstrated: No manual testing of code mentioned.",
		}),
	{
		Name: Debugging,
		Kind: Inhibitory,
		Sets: []KeywordSet{
			{Name: "debugging", Keywords: []string{"debug", "bug", "error", "wrong", "issue", "problem", "fix", "let's see", "check", "examine", "step through", "reason", "logic", "analyze", "investigate"}},
			{Name: "effective", Keywords: []string{"it seems", "because of", "the issue is", "let's check", "step by step", "logical", "reasoning"}},
			{Name: "guessing", Keywords: []string{"maybe", "perhaps", "guess", "try", "randomly", "just see what happens"}},
		},
		Inhibitor: "guessing",
		Tiers: []Tier{
			{Score: 4, Note: "Exceptional: Demonstrates effective debugging with logical reasoning, avoids guessing.",
				Needs: []Need{need(2, "debugging"), need(1, "effective")}},
			{Score: 3, Note: "Proficient: Demonstrates debugging, shows some logical steps, and avoids guessing.",
				Needs: []Need{need(1, "debugging"), need(1, "effective")}},
			{Score: 2, Note: "Developing: Attempts debugging but might be somewhat haphazard or lacks clear reasoning.",
				Needs: []Need{need(1, "debugging")}},
			{Score: 1, Note: "Not Demonstrated: Limited or ineffective debugging, or resorts to guessing."},
		},
	},
	simple(EdgeCases,
		[]string{"edge case", "special case", "boundary condition", "corner case", "handle", "deal with", "account for", "what about", "if input is"},
		[3]int{3, 2, 1},
		[4]string{
			"Exceptional: Thoroughly considers and handles multiple edge cases.",
			"Proficient: Identifies and addresses key edge cases.",
			"Developing: Mentions edge cases but handling might be incomplete or unclear.",
			"Not Demonstrated: No explicit consideration of edge cases.",
		}),
	simple(ThoughtProcess,
		[]string{"because", "so", "therefore", "reasoning", "thinking", "my approach is", "my idea is", "plan is", "step", "next", "then", "first", "second", "initially", "now", "after that"},
		[3]int{15, 8, 3},
		[4]string{
			"Exceptional: Consistently and clearly verbalizes thought process throughout the entire interview.",
			"Proficient: Regularly verbalizes thought process, providing good insight into their thinking.",
			"Developing: Sometimes verbalizes thought process, but may be inconsistent or brief.",
			"Not Demonstrated: Minimal or no verbalization of thought process.",
		}),
	fixed(VocalVolume, "N/A: Cannot be assessed from text transcript."),
	fixed(ToneBodyLanguage, "N/A: Body language and tone (reliably) cannot be assessed from text transcript."),
	fixed(Whiteboard, "N/A: Cannot be assessed from transcript unless explicitly mentioned."),
}
