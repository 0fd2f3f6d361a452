package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

const (
	dateLayout    = "2006-01-02"
	messageLayout = "2006-01-02 15:04"
)

func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	whole := strconv.FormatFloat(*price, 'f', 0, 64)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 && whole[i-1] != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "$" + b.String()
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptional(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func formatTime(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}

func (p *Prompter) printListings(listings []*entity.Listing) {
	for i, l := range listings {
		p.Printf("%d. %s | %s | %s | %s bd / %s ba | %s\n",
			i+1, l.Title, formatPrice(l.Price), l.PropertyType,
			formatInt(l.Bedrooms), formatFloat(l.Bathrooms), l.Status)
	}
}

func (p *Prompter) printListingDetails(d *entity.ListingDetails) {
	l := d.Listing
	p.Printf("\n%s\n", l.Title)
	p.Println(strings.Repeat("-", len(l.Title)))
	if l.Description != "" {
		p.Println(l.Description)
	}
	p.Printf("Price:       %s\n", formatPrice(l.Price))
	p.Printf("Type:        %s\n", l.PropertyType)
	p.Printf("Bedrooms:    %s\n", formatInt(l.Bedrooms))
	p.Printf("Bathrooms:   %s\n", formatFloat(l.Bathrooms))
	p.Printf("Square feet: %s\n", formatInt(l.SquareFeet))
	p.Printf("Address:     %s\n", l.Address)
	p.Printf("Location:    %s\n", l.Location)
	p.Printf("Status:      %s\n", l.Status)
	p.Printf("Listed:      %s\n", l.CreatedAt.Format(dateLayout))

	if len(d.Media) == 0 {
		return
	}
	p.Println("Media:")
	for _, m := range d.Media {
		if m.Caption != "" {
			p.Printf("  [%s] %s (%s)\n", m.MediaType, m.URL, m.Caption)
		} else {
			p.Printf("  [%s] %s\n", m.MediaType, m.URL)
		}
	}
}

func (p *Prompter) printSaved(saved []entity.SavedListingWithListing) {
	for i, s := range saved {
		p.Printf("%d. %s | %s | %s | saved %s\n",
			i+1, s.Title, formatPrice(s.Price), s.PropertyType, s.CreatedAt.Format(dateLayout))
		if s.Notes != "" {
			p.Printf("   Notes: %s\n", s.Notes)
		}
	}
}

func (p *Prompter) printReviews(reviews []entity.ReviewWithNames) {
	for _, r := range reviews {
		p.Printf("%s by %s on %s: %s\n",
			stars(r.Rating), r.Username, r.CreatedAt.Format(dateLayout), r.ListingTitle)
		if r.Comment != "" {
			p.Printf("   %s\n", r.Comment)
		}
		for _, url := range r.MediaURLs {
			p.Printf("   media: %s\n", url)
		}
	}
}

func (p *Prompter) printRating(summary entity.RatingSummary) {
	if summary.Count == 0 {
		p.Println("No ratings yet.")
		return
	}
	p.Printf("Average rating: %.1f from %d review(s)\n", summary.Average, summary.Count)
}

func (p *Prompter) printChatLine(line entity.ChatLine) {
	p.Printf("[%s] %s: %s\n", line.CreatedAt.Format(messageLayout), line.Sender, line.Text)
	for _, a := range line.Attachments {
		p.Printf("    attachment: %s\n", a)
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return fmt.Sprintf("%s%s", strings.Repeat("*", rating), strings.Repeat(".", 5-rating))
}
