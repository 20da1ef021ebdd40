package fixtures

// SeedFile is the top-level structure of the fixtures YAML.
type SeedFile struct {
	Tags       []TagSeed       `yaml:"tags"`
	Users      []UserSeed      `yaml:"users"`
	Posts      []PostSeed      `yaml:"posts"`
	Challenges []ChallengeSeed `yaml:"challenges"`
}

// TagSeed declares a tag.
type TagSeed struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// UserSeed declares a community member.
type UserSeed struct {
	ID          string `yaml:"id"`
	Username    string `yaml:"username"`
	DisplayName string `yaml:"display_name,omitempty"`
	Bio         string `yaml:"bio,omitempty"`
}

// PostSeed declares a feed post. Tags reference TagSeed IDs.
type PostSeed struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Content string   `yaml:"content"`
	Author  string   `yaml:"author,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// ChallengeSeed declares a challenge. Tags reference TagSeed IDs.
type ChallengeSeed struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Difficulty  string   `yaml:"difficulty,omitempty"`
	Active      bool     `yaml:"active"`
	Tags        []string `yaml:"tags,omitempty"`
}
