// internal/profile/model.go
//
// Canonical tenant data model.
//
// Context
// -------
// The persistent store has accumulated several field spellings over its
// revisions (`githubProfile` next to `github`, a misspelled
// `soureCodeUrl` next to `sourceCodeUrl`).  These structs define the one
// canonical schema the rest of the system sees; normalize.go maps every
// known historical spelling onto it at the data-access boundary.  Nothing
// above the store client ever handles a legacy key.
package profile

// SocialLinks holds the tenant's public profile handles.  Short keys are
// canonical; the long `…Profile` forms are accepted on decode only.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	LeetCode string `json:"leetcode"`
	Twitter  string `json:"twitter,omitempty"`
}

// UserProfile is one tenant's public portfolio record.  Read-heavy and
// treated as immutable within a session; owned by the persistent store.
type UserProfile struct {
	Username          string      `json:"username"`
	FullName          string      `json:"fullName"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone,omitempty"`
	Headline          string      `json:"headline"`
	Bio               string      `json:"bio"`
	ProfilePictureURL string      `json:"profilePictureUrl"`
	TechStack         []string    `json:"techStack"`
	SocialLinks       SocialLinks `json:"socialLinks"`
	GitHubRepos       []string    `json:"githubRepos"`
}

// ProjectSummary is the public shape of one project.  Store-internal
// fields (descriptions, media URLs, finish dates) never pass through it,
// so serialising a ProjectSummary can never leak admin-only data.
type ProjectSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	UserID        string   `json:"userId"`
	LiveURL       string   `json:"liveUrl"`
	SourceCodeURL string   `json:"sourceCodeUrl"`
	Technologies  []string `json:"technologies"`
}
