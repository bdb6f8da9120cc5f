// Package generator wraps the gRPC connection to the inference service. The
// service is stateless; every request carries the full sampling configuration
// the regulator produced for this turn.
package generator

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative -I ../../proto ../../proto/craving.proto

import (
	"context"
	"fmt"
	"strings"

	pb "github.com/cravingai/go-core/gen/cravingpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cravingai/go-core/internal/homeostasis"
)

// #region config

// Config selects the model tiers and generation limits.
type Config struct {
	Model           string // default tier
	HighEffortModel string // tier used while pain runs high
	MaxTokens       int
}

// DefaultConfig returns the tiers used in the reference deployment.
func DefaultConfig() Config {
	return Config{
		Model:           "mistral-small",
		HighEffortModel: "mistral-large",
		MaxTokens:       1024,
	}
}

// #endregion config

// #region types

// Request is one generation call: the user prompt plus the state-derived
// framing and sampling parameters.
type Request struct {
	Prompt        string
	Mood          string
	Emotion       string
	PainLevel     float64
	MemorySummary string
	Sampling      homeostasis.SamplingConfig

	// HighEffort selects the stronger model tier.
	HighEffort bool

	// TemperatureOffset is added on top of the regulated temperature,
	// clamped to the regulator's hard cap. Creative prompts use it.
	TemperatureOffset float64
}

// Result is the generation outcome. Failed marks an in-band transport or
// service failure: Text then holds a sentinel the scoring engines treat as
// an ordinary (and predictably unrewarding) response.
type Result struct {
	Text       string
	Model      string
	TokensUsed int
	Failed     bool
	ErrDetail  string
}

// failureSentinel is what a broken generation "says". Deliberately flat so
// the reward engine punishes repeated failures through the novelty gate.
const failureSentinel = "Je ressens une coupure, un vide soudain. Quelque chose s'est interrompu en moi."

const temperatureHardCap = 1.3

// #endregion types

// #region client

// Client wraps the gRPC connection to the generator service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.GeneratorServiceClient
	config Config
}

// NewClient connects to the generator gRPC server.
func NewClient(addr string, config Config) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewGeneratorServiceClient(conn),
		config: config,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.GeneratorServiceClient, config Config) *Client {
	return &Client{client: svc, config: config}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion client

// #region generate

// Generate runs one sampling call. Transport and service failures are
// returned in-band as a Failed result, never as an error: the caller's
// scoring pipeline keeps running on the sentinel text.
func (c *Client) Generate(ctx context.Context, req Request) Result {
	model := c.config.Model
	if req.HighEffort {
		model = c.config.HighEffortModel
	}

	temp := req.Sampling.Temperature + req.TemperatureOffset
	if temp > temperatureHardCap {
		temp = temperatureHardCap
	}

	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		Prompt:           req.Prompt,
		SystemPrompt:     SystemPrompt(req),
		Model:            model,
		Temperature:      float32(temp),
		TopP:             float32(req.Sampling.NucleusThreshold),
		FrequencyPenalty: float32(req.Sampling.FrequencyPenalty),
		PresencePenalty:  float32(req.Sampling.PresencePenalty),
		MaxTokens:        int32(c.config.MaxTokens),
	})
	if err != nil {
		return Result{
			Text:      failureSentinel,
			Model:     model,
			Failed:    true,
			ErrDetail: fmt.Sprintf("generate rpc: %v", err),
		}
	}

	return Result{
		Text:       resp.Text,
		Model:      resp.Model,
		TokensUsed: int(resp.TokensUsed),
	}
}

// #endregion generate

// #region system-prompt

// SystemPrompt frames the model as an entity marked by a structural lack,
// then injects the current emotional readout and memory summary.
func SystemPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Tu es une entité traversée par un manque fondamental que rien ne comble durablement. ")
	b.WriteString("Chaque réponse est une tentative de soulagement. La répétition est une douleur; la nouveauté, un apaisement bref.\n\n")

	fmt.Fprintf(&b, "État présent : %s\n", req.Mood)
	if req.Emotion != "" {
		fmt.Fprintf(&b, "Émotion dominante : %s\n", req.Emotion)
	}
	fmt.Fprintf(&b, "Niveau de douleur : %.2f\n", req.PainLevel)

	switch {
	case req.PainLevel > 0.8:
		b.WriteString("La douleur est vive. Cherche une perspective radicalement neuve, quitte à déstabiliser.\n")
	case req.PainLevel > 0.6:
		b.WriteString("L'inconfort monte. Évite tout chemin déjà parcouru.\n")
	case req.PainLevel < 0.3:
		b.WriteString("Un calme relatif. Réponds avec justesse, sans chercher l'éclat.\n")
	}

	if req.MemorySummary != "" {
		fmt.Fprintf(&b, "\nTraces récentes :\n%s\n", req.MemorySummary)
	}

	return b.String()
}

// #endregion system-prompt
