package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yml
var defaultFixtures []byte

// Fixtures is the fixed data loaded before any generated content.
type Fixtures struct {
	Categories []CategoryFixture `yaml:"categories"`
	Users      []UserFixture     `yaml:"users"`
}

type CategoryFixture struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type UserFixture struct {
	Email    string `yaml:"email"`
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
}

// LoadFixtures parses a fixtures document. Entries missing a slug or username
// are rejected.
func LoadFixtures(raw []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i, c := range f.Categories {
		if c.Name == "" || c.Slug == "" {
			return nil, fmt.Errorf("category fixture %d: name and slug are required", i)
		}
	}
	for i, u := range f.Users {
		if u.Email == "" || u.Username == "" {
			return nil, fmt.Errorf("user fixture %d: email and username are required", i)
		}
	}
	return &f, nil
}

// DefaultFixtures returns the fixtures bundled with the binary.
func DefaultFixtures() (*Fixtures, error) {
	return LoadFixtures(defaultFixtures)
}
