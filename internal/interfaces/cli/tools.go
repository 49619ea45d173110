package cli

import "orbitalintel.ai/tools/internal/core/session"

// Tool identities. Versions are the release dates of each tool.
var (
	Png2IconTool = session.Tool{
		Name:      "Png2Icon",
		Program:   "png2icon",
		Title:     ".PNG to .ICO Converter",
		Version:   "2024.11.21",
		Copyright: "2024",
	}

	Video2GifTool = session.Tool{
		Name:      "Video2Gif",
		Program:   "video2gif",
		Title:     "Video file to .GIF Converter",
		Version:   "2024.12.26",
		Copyright: "2024",
	}

	ContactCardTool = session.Tool{
		Name:      "QRCode",
		Program:   "contactcardqr",
		Title:     "QR Code VCard Generator",
		Version:   "2024.11.21",
		Copyright: "2023-2024",
	}

	URLTool = session.Tool{
		Name:      "QRCode",
		Program:   "urlqr",
		Title:     "URL QR Code Generator",
		Version:   "2024.11.21",
		Copyright: "2023-2024",
	}

	WifiTool = session.Tool{
		Name:      "QRCode",
		Program:   "wifiqr",
		Title:     "WiFi Network QR Code Generator",
		Version:   "2024.11.21",
		Copyright: "2024",
	}
)
