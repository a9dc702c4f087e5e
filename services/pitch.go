package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// PitchFallback is returned whenever the pitch generation call fails for any
// reason, so the operator always gets something usable.
const PitchFallback = "¡Sigue rockeando! Esta prenda es única y el precio es justo para la calidad que entregamos."

// PitchService generates a short persuasive sales text for a quoted garment
// through the Gemini API. A zero API key or any client/transport failure
// degrades to PitchFallback. Endpoint overrides the API base URL in tests.
type PitchService struct {
	APIKey   string
	Model    string
	Endpoint string
	Client   *http.Client
}

// NewPitchService builds a PitchService with the default model.
func NewPitchService(apiKey string) *PitchService {
	return &PitchService{
		APIKey: apiKey,
		Model:  "gemini-2.0-flash",
		Client: &http.Client{Timeout: 20 * time.Second},
	}
}

// BuildPitchPrompt assembles the prompt from the configuration, its computed
// breakdown, and the resolved product.
func BuildPitchPrompt(cfg QuoteConfig, b Breakdown, product ProductReference) string {
	return fmt.Sprintf(`Actúa como un experto en ventas de ropa rockera para niños y adultos de la marca "Furia Rock Kids".

Datos de la cotización actual:
- Producto: %s
- Talla: %s (%s)
- Precio de Venta: %s COP
- Área de estampado: %g cm2

Genera un breve discurso de venta (pitch) persuasivo y con estilo rockero para convencer al cliente de comprar esta prenda. Menciona la calidad y el diseño único. Máximo 3 párrafos. Usa un tono rebelde pero profesional.`,
		product.Name,
		cfg.Size,
		categoryLabel(string(cfg.Category)),
		FormatCOP(b.UnitPrice),
		cfg.PrintAreaCm2,
	)
}

// SalesPitch returns a persuasive pitch for the quoted configuration. It
// never fails: any error along the way yields PitchFallback.
func (s *PitchService) SalesPitch(ctx context.Context, cfg QuoteConfig, b Breakdown, product ProductReference) string {
	if s.APIKey == "" {
		return PitchFallback
	}

	cc := &genai.ClientConfig{
		APIKey:     s.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.Client,
	}
	if s.Endpoint != "" {
		cc.HTTPOptions.BaseURL = s.Endpoint
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return PitchFallback
	}

	resp, err := client.Models.GenerateContent(ctx, s.Model,
		genai.Text(BuildPitchPrompt(cfg, b, product)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.8)},
	)
	if err != nil {
		return PitchFallback
	}

	text := resp.Text()
	if text == "" {
		return PitchFallback
	}
	return text
}
