package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"scerr/internal/domain"
	pkgdiscord "scerr/pkg/discord"
)

const codeOption = "code"

var errCodeCommand = &discordgo.ApplicationCommand{
	Name:        "errcode",
	Description: "Explain an error code",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        codeOption,
			Description: "Error code: 1004, 0x3EC or SCERR1004",
			Required:    true,
		},
	},
}

func (h *Handler) HandleErrCode(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var raw string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == codeOption {
			raw = opt.StringValue()
		}
	}
	data := h.errCodeResponse(string(i.Locale), raw)
	respond(s, i.Interaction, data)
}

func (h *Handler) errCodeResponse(locale, raw string) *discordgo.InteractionResponseData {
	code, err := domain.ParseErrorCode(raw)
	if err != nil {
		return &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("`%s` is not an error code. Use decimal, 0x-hex or SCERR notation.", raw),
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}
	d := h.describe.Describe(locale, code)
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildErrorCodeEmbed(d)},
	}
}
