package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Status     string             `bson:"status" json:"status"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Website    string             `bson:"website,omitempty" json:"website,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio        string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills     []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Social     map[string]string  `bson:"social,omitempty" json:"social,omitempty"`
	Experience []Experience       `bson:"experience" json:"experience"`
	Education  []Education        `bson:"education" json:"education"`
	UpdatedAt  int64              `bson:"updatedAt" json:"updatedAt"`

	// Populated in list responses only
	User *User `bson:"-" json:"user,omitempty"`
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        int64              `bson:"from" json:"from"`
	To          int64              `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	School       string             `bson:"school" json:"school"`
	Degree       string             `bson:"degree" json:"degree"`
	FieldOfStudy string             `bson:"fieldOfStudy" json:"fieldOfStudy"`
	From         int64              `bson:"from" json:"from"`
	To           int64              `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ParseSkills splits a comma-separated skills string and trims each
// entry. Blank segments are dropped; an empty input yields nil rather
// than an empty list.
func ParseSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// AddExperience assigns a fresh id and inserts the entry at the head,
// newest first. Returns the generated id.
func (p *Profile) AddExperience(exp Experience) primitive.ObjectID {
	exp.ID = primitive.NewObjectID()
	p.Experience = append([]Experience{exp}, p.Experience...)
	return exp.ID
}

// RemoveExperience drops the entry with the given id. An unknown id is
// a silent no-op: the caller persists the unchanged document rather
// than failing.
func (p *Profile) RemoveExperience(id primitive.ObjectID) {
	kept := p.Experience[:0]
	for _, exp := range p.Experience {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	p.Experience = kept
}

func (p *Profile) AddEducation(edu Education) primitive.ObjectID {
	edu.ID = primitive.NewObjectID()
	p.Education = append([]Education{edu}, p.Education...)
	return edu.ID
}

func (p *Profile) RemoveEducation(id primitive.ObjectID) {
	kept := p.Education[:0]
	for _, edu := range p.Education {
		if edu.ID != id {
			kept = append(kept, edu)
		}
	}
	p.Education = kept
}
