// Package site holds the page copy and the embedded page template.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/curtsdirt/site/internal/config"
	"github.com/curtsdirt/site/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Script recomputes the calculator as the visitor types and opens the mail
// draft without leaving the page. The plain forms still work without it.
//
//go:embed static/site.js
var Script []byte

type Content struct {
	Business     model.Business
	Highlights   []model.Highlight
	Services     []model.Service
	Steps        []model.Step
	Testimonials []model.Testimonial
}

func NewContent(cfg config.BusinessConfig) Content {
	return Content{
		Business: model.Business{
			Name:         "Curt's Dirt",
			Tagline:      "Farm fresh soil, delivery made simple.",
			Phone:        cfg.Phone,
			PhoneDisplay: FormatPhone(cfg.Phone),
			ContactEmail: cfg.ContactEmail,
			PublicEmail:  cfg.PublicEmail,
			Location:     "Evan's City, Pennsylvania",
			ServiceArea:  []string{"Meridian", "Callery", "Mars", "Cranberry", "Butler"},
		},
		Highlights: []model.Highlight{
			{
				Title:       "Screened topsoil",
				Description: "Rich, clean soil that arrives ready for gardens, lawns, and new landscape beds.",
			},
			{
				Title:       "Compost & amendments",
				Description: "Boost your beds with organic compost and soil blends mixed to your project.",
			},
			{
				Title:       "Fill dirt & leveling",
				Description: "Affordable loads for grading, retaining walls, and construction prep.",
			},
		},
		Services: []model.Service{
			{
				Name:        "Residential delivery",
				Description: "Single-load deliveries sized for backyards, raised beds, and lawn refreshes across Butler County.",
				Details: []string{
					"Flexible delivery windows Monday through Saturday",
					"Dump as close to where you need it: driveway, curbside, or job site",
					"Transparent pricing with fuel and labor built in",
				},
			},
			{
				Name:        "Contractor & multi-load",
				Description: "Keep projects on schedule with coordinated drop times and consistent, screened material.",
				Details: []string{
					"Bulk pricing available for recurring orders",
					"Direct dispatch updates the morning of delivery",
					"Mix-and-match soil, compost, and fill for each load",
				},
			},
			{
				Name:        "Custom soil blends",
				Description: "We combine topsoil, sand, and compost to match the drainage and nutrition your plants need.",
				Details: []string{
					"Ideal for raised beds, turf installs, and planters",
					"Samples available upon request for large jobs",
					"Talk through your specs directly with Curt before we load",
				},
			},
		},
		Steps: []model.Step{
			{
				Title:       "Tell us about your project",
				Description: "Call, text, or send the form with your address, material choice, and how soon you need it.",
			},
			{
				Title:       "Schedule a delivery window",
				Description: "We confirm your drop time, text when we are on the way, and keep you posted if weather shifts the plan.",
			},
			{
				Title:       "Get straight-to-the-spot dumping",
				Description: "We place the load as close to where you need it so you can spread and get back to building sooner.",
			},
		},
		Testimonials: []model.Testimonial{
			{
				Quote: "Curt went above and beyond. He squeezed us in the same week we called and the soil quality beat the big box stores.",
				Name:  "Melissa, Butler",
			},
			{
				Quote: "Great place for dirt! Much better quality than the other landscape supply yards nearby.",
				Name:  "Chris Koss, Meridian",
			},
		},
	}
}

// FormatPhone turns a 10 digit number into "(724) 856-2033". Anything else is
// returned unchanged.
func FormatPhone(raw string) string {
	digits := make([]rune, 0, len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != 10 {
		return raw
	}
	d := string(digits)
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"inc":  func(i int) int { return i + 1 },
		"join": strings.Join,
	}
	return template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
