package flow

import "chatbot/internal/domain"

// Phrases holds the user-visible prompts and notices of a session.
// Send lines are produced by the channels and are not part of the catalog.
type Phrases struct {
	ChannelMenuTitle string
	MessageMenuTitle string

	// Destination prompt per channel kind.
	Destination map[domain.ChannelKind]string
	// Menu label per message kind.
	MessageLabel map[domain.MessageKind]string

	MessageText string
	// Attachment prompts per media kind.
	AttachmentFile   map[domain.MessageKind]string
	AttachmentFormat map[domain.MessageKind]string
	VideoDuration    string

	InvalidChannel     string
	InvalidMessageType string
	InvalidDuration    string
}

var English = Phrases{
	ChannelMenuTitle: "Choose the social network:",
	MessageMenuTitle: "Choose the message type:",
	Destination: map[domain.ChannelKind]string{
		domain.ChannelWhatsApp:  "Enter the phone number: ",
		domain.ChannelTelegram:  "Enter the username: ",
		domain.ChannelFacebook:  "Enter the Facebook username: ",
		domain.ChannelInstagram: "Enter the Instagram username: ",
		domain.ChannelEmail:     "Enter the email address: ",
	},
	MessageLabel: map[domain.MessageKind]string{
		domain.KindText:  "Text",
		domain.KindVideo: "Video",
		domain.KindPhoto: "Photo",
		domain.KindFile:  "File",
	},
	MessageText: "Enter the message: ",
	AttachmentFile: map[domain.MessageKind]string{
		domain.KindVideo: "Enter the video file: ",
		domain.KindPhoto: "Enter the photo file: ",
		domain.KindFile:  "Enter the file: ",
	},
	AttachmentFormat: map[domain.MessageKind]string{
		domain.KindVideo: "Enter the video format: ",
		domain.KindPhoto: "Enter the photo format: ",
		domain.KindFile:  "Enter the file format: ",
	},
	VideoDuration:      "Enter the video duration (minutes:seconds): ",
	InvalidChannel:     "Invalid social network choice.",
	InvalidMessageType: "Invalid message type choice.",
	InvalidDuration:    "Invalid duration format. Using default duration of 0 seconds.",
}

var Portuguese = Phrases{
	ChannelMenuTitle: "Escolha a rede social:",
	MessageMenuTitle: "Escolha o tipo de mensagem:",
	Destination: map[domain.ChannelKind]string{
		domain.ChannelWhatsApp:  "Digite o número de telefone: ",
		domain.ChannelTelegram:  "Digite o nome de usuário: ",
		domain.ChannelFacebook:  "Digite o nome de usuário no Facebook: ",
		domain.ChannelInstagram: "Digite o nome de usuário no Instagram: ",
		domain.ChannelEmail:     "Digite o endereço de e-mail: ",
	},
	MessageLabel: map[domain.MessageKind]string{
		domain.KindText:  "Texto",
		domain.KindVideo: "Video",
		domain.KindPhoto: "Foto",
		domain.KindFile:  "Arquivo",
	},
	MessageText: "Digite a mensagem: ",
	AttachmentFile: map[domain.MessageKind]string{
		domain.KindVideo: "Digite o arquivo do vídeo: ",
		domain.KindPhoto: "Digite o arquivo da foto: ",
		domain.KindFile:  "Digite o arquivo: ",
	},
	AttachmentFormat: map[domain.MessageKind]string{
		domain.KindVideo: "Digite o formato do vídeo: ",
		domain.KindPhoto: "Digite o formato da foto: ",
		domain.KindFile:  "Digite o formato do arquivo: ",
	},
	VideoDuration:      "Digite a duração do vídeo (minutos:segundos): ",
	InvalidChannel:     "Escolha de rede social inválida.",
	InvalidMessageType: "Escolha de tipo de mensagem inválida.",
	InvalidDuration:    "Formato de duração inválido. Usando duração padrão de 0 segundos.",
}

// PhrasesFor returns the catalog for a language code ("en", "pt"). Unknown codes get English.
func PhrasesFor(lang string) Phrases {
	if lang == "pt" {
		return Portuguese
	}
	return English
}
