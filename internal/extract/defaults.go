package extract

// DefaultPatterns returns the built-in extraction pattern set, tuned for
// profile/résumé style documents. Values are captured verbatim from the
// source text. A user-supplied pattern file replaces this set entirely.
func DefaultPatterns() []PatternDef {
	return []PatternDef{
		// Personal details
		{
			Label: "First Name",
			Expr:  `(\w+)\s+\w+\s+was born`,
			Group: 1,
		},
		{
			Label: "Last Name",
			Expr:  `\w+\s+(\w+)\s+was born`,
			Group: 1,
		},
		{
			Label: "Date of Birth",
			Expr:  `born on (\w+ \d{1,2}, \d{4})`,
			Group: 1,
		},
		{
			Label: "Birth City",
			Expr:  `born on [^,]+, \d{4},? in (\w+)`,
			Group: 1,
		},
		{
			Label: "Birth State",
			Expr:  `born on [^,]+, \d{4},? in \w+, (\w+)`,
			Group: 1,
		},
		{
			Label: "Age",
			Expr:  `making him (\d+) years old`,
			Group: 1,
		},
		{
			Label: "Blood Group",
			Expr:  `his ([A-Z]{1,2}[+-]?) blood group`,
			Group: 1,
		},
		{
			Label: "Nationality",
			Expr:  `As an? (\w+) national`,
			Group: 1,
		},

		// Professional history
		{
			Label: "First Joining Date",
			Expr:  `professional journey began on (\w+ \d{1,2}, \d{4})`,
			Group: 1,
		},
		{
			Label: "First Designation",
			Expr:  `joined his first company as an? ([A-Z][\w ]+?) with an annual salary`,
			Group: 1,
		},
		{
			Label: "First Salary",
			Expr:  `annual salary of ([\d,]+) INR`,
			Group: 1,
		},
		{
			Label: "Current Organization",
			Expr:  `current role at ([\w .&]+?),? beginning`,
			Group: 1,
		},
		{
			Label: "Current Joining Date",
			Expr:  `beginning on (\w+ \d{1,2}, \d{4})`,
			Group: 1,
		},
		{
			Label: "Current Designation",
			Expr:  `where he serves as an? ([A-Z][\w ]+?) earning`,
			Group: 1,
		},
		{
			Label: "Current Salary",
			Expr:  `earning ([\d,]+) INR annually`,
			Group: 1,
		},
		{
			Label: "Previous Organization",
			Expr:  `he worked at ([\w .&]+?) from`,
			Group: 1,
		},
		{
			Label: "Previous Joining Date",
			Expr:  `from (\w+ \d{1,2}, \d{4}), to`,
			Group: 1,
		},
		{
			Label: "Previous End Year",
			Expr:  `from \w+ \d{1,2}, \d{4}, to (\d{4})`,
			Group: 1,
		},

		// Education
		{
			Label: "High School",
			Expr:  `high school education at ([^,]+),`,
			Group: 1,
		},
		{
			Label: "12th Pass Out Year",
			Expr:  `12th standard in (\d{4})`,
			Group: 1,
		},
		{
			Label: "12th Board Score",
			Expr:  `achieving an outstanding ([\d.]+)% overall score`,
			Group: 1,
		},
		{
			Label: "Undergraduate Degree",
			Expr:  `pursued his (B\.(?:Tech|Sc|A|E)[\w .]*?) at`,
			Group: 1,
		},
		{
			Label: "Undergraduate College",
			Expr:  `at the prestigious ([^,]+), graduating`,
			Group: 1,
		},
		{
			Label: "Undergraduate Year",
			Expr:  `graduating with honors in (\d{4})`,
			Group: 1,
		},
		{
			Label: "Undergraduate CGPA",
			Expr:  `with a CGPA of ([\d.]+) on a 10-point scale`,
			Group: 1,
		},
		{
			Label: "Graduation Degree",
			Expr:  `earned his (M\.(?:Tech|Sc|A|E|BA)[\w .]*?) in`,
			Group: 1,
		},
		{
			Label: "Graduation Year",
			Expr:  `(?:M\.Tech|master's)[\w .]* in .*?(\d{4})`,
			Group: 1,
		},
		{
			Label: "Graduation CGPA",
			Expr:  `exceptional CGPA of ([\d.]+)`,
			Group: 1,
		},

		// Certifications
		{
			Label: "Certification",
			Expr:  `(AWS Solutions Architect|Azure Data Engineer|Project Management Professional|SAFe Agilist)`,
			Group: 1,
		},
		{
			Label: "Certification Score",
			Expr:  `with a score of (\d+ out of \d+)`,
			Group: 1,
		},
	}
}
