package family

// Gender is the declared gender of a family member.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Member is a single person in the family tree. Mom, Dad and MarriedTo hold the
// ids of other members; an empty string means unknown. The store does not
// enforce that references resolve or that marriages are symmetric.
type Member struct {
	ID        string   `json:"id" dynamodbav:"id"`
	Name      string   `json:"name" dynamodbav:"name"`
	Surname   string   `json:"surname" dynamodbav:"surname"`
	Nickname  string   `json:"nickname,omitempty" dynamodbav:"nickname,omitempty"`
	Birthday  string   `json:"birthday" dynamodbav:"birthday"`
	Gender    Gender   `json:"gender" dynamodbav:"gender"`
	Mom       string   `json:"mom" dynamodbav:"mom,omitempty"`
	Dad       string   `json:"dad" dynamodbav:"dad,omitempty"`
	MarriedTo string   `json:"marriedTo,omitempty" dynamodbav:"marriedTo,omitempty"`
	Photo     []string `json:"photo,omitempty" dynamodbav:"photo,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
}

// IsRoot reports whether the member has no known parents. Roots are the
// founders the tree is drawn from.
func (m Member) IsRoot() bool {
	return m.Mom == "" && m.Dad == ""
}
