package service

import (
	"errors"
	"math"
	"sort"

	"archetype-quiz/internal/domain"
)

// ResolverConfig agrupa los umbrales tunables del resolver como
// configuración nombrada.
type ResolverConfig struct {
	// SecondaryWindow es la distancia máxima sobre el primario dentro de la
	// cual otro arquetipo califica como secundario.
	SecondaryWindow float64
	// ConfidenceScale normaliza el gap primario/siguiente a [0, 1].
	ConfidenceScale float64
	// Cortes monotónicos del nivel discreto: < LowCut → low, < MedCut →
	// medium, resto → high.
	ConfidenceLowCut float64
	ConfidenceMedCut float64
}

// DefaultResolverConfig son los umbrales por defecto del producto.
var DefaultResolverConfig = ResolverConfig{
	SecondaryWindow:  12.0,
	ConfidenceScale:  40.0,
	ConfidenceLowCut: 0.33,
	ConfidenceMedCut: 0.66,
}

// ArchetypeResolver mapea AxisScores al arquetipo más cercano por distancia
// euclidiana en el espacio de 4 ejes, con desempate determinista por id.
type ArchetypeResolver struct {
	profiles []domain.ArchetypeProfile
	cfg      ResolverConfig
}

var (
	ErrNoProfiles       = errors.New("archetype resolver: no profiles configured")
	ErrScoresOutOfRange = errors.New("archetype resolver: axis scores out of range")
)

// NewArchetypeResolver construye un resolver con perfiles y umbrales
// inyectados; sin singletons escondidos para que los tests controlen ambos.
func NewArchetypeResolver(profiles []domain.ArchetypeProfile, cfg ResolverConfig) *ArchetypeResolver {
	if cfg.SecondaryWindow <= 0 {
		cfg.SecondaryWindow = DefaultResolverConfig.SecondaryWindow
	}
	if cfg.ConfidenceScale <= 0 {
		cfg.ConfidenceScale = DefaultResolverConfig.ConfidenceScale
	}
	if cfg.ConfidenceLowCut <= 0 {
		cfg.ConfidenceLowCut = DefaultResolverConfig.ConfidenceLowCut
	}
	if cfg.ConfidenceMedCut <= cfg.ConfidenceLowCut {
		cfg.ConfidenceMedCut = DefaultResolverConfig.ConfidenceMedCut
	}
	return &ArchetypeResolver{profiles: profiles, cfg: cfg}
}

type profileDistance struct {
	profile  domain.ArchetypeProfile
	distance float64
}

// Determine resuelve el arquetipo primario, los secundarios dentro de la
// ventana de cercanía y la confianza derivada del gap con el siguiente.
// Falla rápido con scores mal formados: eso es un bug del caller.
func (r *ArchetypeResolver) Determine(scores domain.AxisScores) (domain.ArchetypeResult, error) {
	if len(r.profiles) == 0 {
		return domain.ArchetypeResult{}, ErrNoProfiles
	}
	if !scores.Valid() {
		return domain.ArchetypeResult{}, ErrScoresOutOfRange
	}

	ranked := make([]profileDistance, 0, len(r.profiles))
	for _, p := range r.profiles {
		ranked = append(ranked, profileDistance{profile: p, distance: euclidean(scores, p.Reference)})
	}
	// Orden total: distancia ascendente, empates a precisión de máquina por
	// id menor. Nunca por orden de iteración de un mapa.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].profile.ID < ranked[j].profile.ID
	})

	primary := ranked[0]
	var secondary []domain.ArchetypeProfile
	for _, pd := range ranked[1:] {
		if pd.distance-primary.distance <= r.cfg.SecondaryWindow {
			secondary = append(secondary, pd.profile)
		}
	}

	confidence := 1.0
	if len(ranked) > 1 {
		gap := ranked[1].distance - primary.distance
		confidence = gap / r.cfg.ConfidenceScale
		if confidence > 1 {
			confidence = 1
		}
		if confidence < 0 {
			confidence = 0
		}
	}

	return domain.ArchetypeResult{
		Primary:         primary.profile,
		Secondary:       secondary,
		Confidence:      confidence,
		ConfidenceLevel: r.confidenceLevel(confidence),
	}, nil
}

func (r *ArchetypeResolver) confidenceLevel(confidence float64) string {
	switch {
	case confidence < r.cfg.ConfidenceLowCut:
		return domain.ConfidenceLow
	case confidence < r.cfg.ConfidenceMedCut:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceHigh
	}
}

func euclidean(a, b domain.AxisScores) float64 {
	av, bv := a.Vector(), b.Vector()
	var sum float64
	for i := range av {
		d := av[i] - bv[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
