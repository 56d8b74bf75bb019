package database

import (
	"log"

	"giveone/internal/domain"
	"giveone/internal/models"

	"gorm.io/gorm"
)

// SeedCases inserts the demo fundraising cases once, when the table is empty.
func SeedCases(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		log.Printf("[seed] count cases: %v", err)
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(defaultCases()).Error; err != nil {
		log.Printf("[seed] create cases: %v", err)
		return
	}
	log.Printf("[seed] inserted %d demo cases", len(defaultCases()))
}

func defaultCases() []models.Case {
	open := domain.CaseStatusOpen
	return []models.Case{
		{
			Title:       "Cleveland Clinic – Heart Patient Support",
			OrgName:     "Cleveland Clinic (Demo)",
			GoalCents:   500_000,
			RaisedCents: 120_000,
			Status:      open,
			Category:    "Hospital",
			City:        "Cleveland, OH",
			Description: "Help families cover parking, meals, and lodging while a loved one undergoes cardiac surgery at a major heart center.",
		},
		{
			Title:       "St. Jude – Pediatric Cancer Travel",
			OrgName:     "St. Jude (Demo)",
			GoalCents:   600_000,
			RaisedCents: 300_000,
			Status:      open,
			Category:    "Hospital",
			City:        "Memphis, TN",
			Description: "Provide travel stipends for families flying in for pediatric cancer treatment so money is never a reason to skip care.",
		},
		{
			Title:       "Mayo Clinic – Transplant Housing",
			OrgName:     "Mayo Clinic (Demo)",
			GoalCents:   750_000,
			RaisedCents: 425_000,
			Status:      open,
			Category:    "Hospital",
			City:        "Rochester, MN",
			Description: "Support short-term housing for transplant patients and their caregivers staying near the hospital during recovery.",
		},
		{
			Title:       "Johns Hopkins – NICU Family Meals",
			OrgName:     "Johns Hopkins (Demo)",
			GoalCents:   300_000,
			RaisedCents: 80_000,
			Status:      open,
			Category:    "Hospital",
			City:        "Baltimore, MD",
			Description: "Parents of babies in the NICU can spend 12+ hours bedside. Fund hot meals so they don't have to choose between food and time with their child.",
		},
		{
			Title:       "Mass General – Emergency Hardship",
			OrgName:     "Mass General (Demo)",
			GoalCents:   400_000,
			RaisedCents: 150_000,
			Status:      open,
			Category:    "Hospital",
			City:        "Boston, MA",
			Description: "A small emergency grant can keep the lights on or cover a co-pay after a sudden illness. You help social workers say 'yes'.",
		},
		{
			Title:       "Community Counseling Sessions",
			OrgName:     "Mindful City (Demo)",
			GoalCents:   250_000,
			RaisedCents: 90_000,
			Status:      open,
			Category:    "Mental Health",
			City:        "Cleveland, OH",
			Description: "Sponsor therapy sessions for people on waiting lists so they can access mental health care before they're in crisis.",
		},
		{
			Title:       "Student Mental Health Hotline",
			OrgName:     "Campus Support (Demo)",
			GoalCents:   300_000,
			RaisedCents: 120_000,
			Status:      open,
			Category:    "Mental Health",
			City:        "Nationwide",
			Description: "Fund trained counselors for a 24/7 text line so college students can reach out anonymously any time they need support.",
		},
		{
			Title:       "Plant a Tree in Your City",
			OrgName:     "GreenEarth (Demo)",
			GoalCents:   200_000,
			RaisedCents: 65_000,
			Status:      open,
			Category:    "Environment",
			City:        "Multiple cities",
			Description: "A community lost its shade after storms. Every $5 plants a sapling. Kids walk to school under the sun—your help grows a living canopy.",
		},
		{
			Title:       "School Lunch for a Month",
			OrgName:     "BrightPlates (Demo)",
			GoalCents:   200_000,
			RaisedCents: 80_000,
			Status:      open,
			Category:    "Education",
			City:        "Local districts",
			Description: "Hungry students can't focus. $10 covers a child's lunches for a month—a small lift that changes their whole day.",
		},
	}
}
