package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/teepha/More-Recipes/internal/models"
)

const minRecipeTextLen = 20

var recipeTitleRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)

// RecipeInput is the body of recipe create and update requests.
type RecipeInput struct {
	Title       *string `json:"title"`
	Ingredients *string `json:"ingredients"`
	Procedures  *string `json:"procedures"`
}

// SortQuery holds the raw sort and order query parameters. A nil field was
// not present in the query string.
type SortQuery struct {
	Sort  *string
	Order *string
}

// ValidateAddRecipe requires all three recipe fields.
func ValidateAddRecipe(in RecipeInput) Result {
	if anyUndefined(in.Title, in.Ingredients, in.Procedures) {
		return notDefined("All or some fields are not defined")
	}
	errs := fieldErrors{}
	checkTitle(errs, *in.Title)
	checkRecipeText(errs, "ingredients", *in.Ingredients)
	checkRecipeText(errs, "procedures", *in.Procedures)
	return errs.result()
}

// ValidateUpdateRecipe checks only the fields that carry a value and requires
// at least one of them. Blank fields are treated as absent.
func ValidateUpdateRecipe(in RecipeInput) Result {
	if blank(in.Title) && blank(in.Ingredients) && blank(in.Procedures) {
		return Result{Code: models.CodeValidation, Message: "Specify data to update"}
	}
	errs := fieldErrors{}
	if !blank(in.Title) {
		checkTitle(errs, *in.Title)
	}
	if !blank(in.Ingredients) {
		checkRecipeText(errs, "ingredients", *in.Ingredients)
	}
	if !blank(in.Procedures) {
		checkRecipeText(errs, "procedures", *in.Procedures)
	}
	return errs.result()
}

// ValidateSortQuery passes when neither parameter is present. Both must be
// present together and carry a known value.
func ValidateSortQuery(q SortQuery) Result {
	if q.Sort == nil && q.Order == nil {
		return Result{}
	}
	if q.Sort == nil || q.Order == nil {
		return notDefined("Sort or(and) order query parameter(s) is(are) not defined")
	}

	errs := fieldErrors{}
	switch sort := strings.ToLower(strings.TrimSpace(*q.Sort)); sort {
	case "":
		errs.add("sortType", "Sort query is required")
	case string(models.SortByUpvotes), string(models.SortByDownvotes):
	default:
		errs.add("sortType", "Sort query must be either upvotes or downvotes")
	}
	switch order := strings.ToLower(strings.TrimSpace(*q.Order)); order {
	case "":
		errs.add("order", "Order query is required")
	case "asc", "desc":
	default:
		errs.add("order", "Order query must be either asc or desc")
	}
	return errs.result()
}

func checkTitle(errs fieldErrors, title string) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		errs.add("title", "Recipe title is required")
	case !recipeTitleRegex.MatchString(title):
		errs.add("title", "Recipe title must contain only alphabets")
	}
}

func checkRecipeText(errs fieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.add(field, "Recipe "+field+" are required")
	case utf8.RuneCountInString(value) < minRecipeTextLen:
		errs.add(field, "Recipe "+field+" provided must be at least 20 characters")
	}
}
