package seed

import (
	"fmt"
	"strings"
	"unicode"

	"blogcms/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds unsaved entities filled with fake content. A fixed seed gives
// reproducible output.
type Factory struct {
	faker *gofakeit.Faker
	seq   int
}

// NewFactory creates a Factory. A seed of 0 picks a random one.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

func (f *Factory) next() int {
	f.seq++
	return f.seq
}

// User returns a user whose email and username are unique within this factory.
func (f *Factory) User() *models.User {
	n := f.next()
	name := f.faker.Name()
	username := fmt.Sprintf("%s%d", strings.ToLower(f.faker.Username()), n)
	if len(username) > 50 {
		username = username[len(username)-50:]
	}
	return &models.User{
		Email:          fmt.Sprintf("user%d.%s", n, strings.ToLower(f.faker.Email())),
		Username:       username,
		FullName:       &name,
		HashedPassword: f.faker.Password(true, true, true, false, false, 16),
		IsActive:       true,
	}
}

// Post returns a post in categoryID (nil for none). Roughly two thirds of the
// posts are published.
func (f *Factory) Post(categoryID *uint) *models.Post {
	n := f.next()
	title := strings.TrimSuffix(f.faker.Sentence(6), ".")
	excerpt := f.faker.Sentence(12)
	return &models.Post{
		Title:       title,
		Slug:        fmt.Sprintf("%s-%d", Slugify(title), n),
		Content:     f.faker.Paragraph(3, 4, 12, "\n\n"),
		Excerpt:     &excerpt,
		IsPublished: f.faker.Number(1, 3) > 1,
		CategoryID:  categoryID,
	}
}

// Comment returns a comment on postID, replying to parentID when it is set.
func (f *Factory) Comment(postID uint, parentID *uint) *models.Comment {
	return &models.Comment{
		Content:    f.faker.Sentence(f.faker.Number(5, 20)),
		PostID:     postID,
		ParentID:   parentID,
		IsApproved: f.faker.Bool(),
	}
}

// Intn returns a pseudo-random number in [0, n).
func (f *Factory) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return f.faker.Number(0, n-1)
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > 200 {
		out = strings.TrimSuffix(out[:200], "-")
	}
	return out
}
