package review

// SectionHeading opens the review section appended to a description.
const SectionHeading = "## AI Review"

// Section returns the delimited review section for summary.
func Section(summary string) string {
	return "\n\n" + SectionHeading + "\n" + summary
}

// AppendSection appends the review section to an existing description. An
// empty description is treated as no description. Repeated calls stack
// sections; nothing is deduplicated.
func AppendSection(description, summary string) string {
	return description + Section(summary)
}
