package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRecipeImage is used when a recipe is created without an image.
const DefaultRecipeImage = "https://slowfood-images.s3.amazonaws.com/defaults/dish.png"

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface. The value is a string so
// the stored column is text, which the SQL json functions accept.
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	Title           string           `gorm:"size:255;not null" json:"title"`
	Ingredients     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Cuisine         string           `gorm:"size:50;not null" json:"cuisine"`
	GlutenFree      bool             `gorm:"not null;default:false" json:"gluten_free"`
	LactoseFree     bool             `gorm:"not null;default:false" json:"lactose_free"`
	Instructions    string           `gorm:"type:text;not null" json:"instructions"`
	Time            int              `gorm:"not null" json:"time"`
	Flavor          string           `gorm:"size:50;not null" json:"flavor"`
	BeveragePairing string           `gorm:"size:50;not null" json:"beverage_pairing"`
	Difficulty      string           `gorm:"size:50;not null" json:"difficulty"`
	ImageURL        string           `gorm:"size:512" json:"image_url"`
	AuthorID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"author_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.ImageURL == "" {
		r.ImageURL = DefaultRecipeImage
	}
	return nil
}

// OwnerID identifies the recipe's author for ownership checks.
func (r *Recipe) OwnerID() uuid.UUID {
	return r.AuthorID
}

// RecipeLike records that a user likes a recipe. The composite unique
// index gives like/unlike their idempotent set semantics: a user appears
// in a recipe's likes at most once.
type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_user" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_user" json:"user_id"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

func (l *RecipeLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
