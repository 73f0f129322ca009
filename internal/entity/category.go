package entity

// Categories are the post categories offered by the submission form.
var Categories = []string{
	"Arts & Entertainment",
	"Business",
	"Careers",
	"Computers",
	"Engineering & Technology",
	"Environment",
	"Fashion",
	"Finance",
	"Food & Beverage",
	"Health & Fitness",
	"Hobbies",
	"Home & Family",
	"Internet",
	"Jobs",
	"Management",
	"Pets & Animals",
	"Politics",
	"Reference & Education",
	"Review",
	"Science",
	"Self Improvement",
	"Society",
	"Sports & Recreation",
	"Transportation",
	"Travel & Leisure",
	"Writing & Speaking",
}
