package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"scerr/internal/domain"
	"scerr/internal/ports/input"
)

const (
	embedColor   = 0x5865F2
	unknownTitle = "Unknown error code"
	maxRemarks   = 1024
)

var severityColors = map[domain.Severity]int{
	domain.SeveritySuccess:       0x57F287,
	domain.SeverityInformational: 0x5865F2,
	domain.SeverityWarning:       0xFEE75C,
	domain.SeverityError:         0xED4245,
}

// BuildErrorCodeEmbed renders a code description. Codes missing from the
// catalog still show the formatted (fallback) message.
func BuildErrorCodeEmbed(d input.Description) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       unknownTitle,
		Description: d.Message,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s • %d • %s", d.Code.MessageID(), uint32(d.Code), d.Code)},
	}
	if d.Entry == nil {
		return embed
	}

	embed.Title = d.Entry.Name
	if c, ok := severityColors[d.Entry.Severity]; ok {
		embed.Color = c
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Severity", Value: d.Entry.Severity.String(), Inline: true},
		{Name: "Facility", Value: fmt.Sprintf("%s (0x%X)", d.Entry.Facility.Name, d.Entry.Facility.Code), Inline: true},
	}
	if len(d.Entry.Remarks) > 0 {
		remarks := strings.Join(d.Entry.Remarks, "\n\n")
		if r := []rune(remarks); len(r) > maxRemarks {
			remarks = string(r[:maxRemarks-1]) + "…"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Remarks", Value: remarks})
	}
	return embed
}
