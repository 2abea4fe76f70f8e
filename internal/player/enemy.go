package player

// Damageable is anything that has health and can be hit.
type Damageable interface {
	Health() int
	TakeDamage(value int)
}

const DefaultEnemyHealth = 10

// Enemy is a simple target. OnDefeated runs once, the first time health
// drops to zero or below.
type Enemy struct {
	Name       string
	OnDefeated func(*Enemy)

	health   int
	defeated bool
}

func NewEnemy(name string, health int) *Enemy {
	if health <= 0 {
		health = DefaultEnemyHealth
	}
	return &Enemy{Name: name, health: health}
}

func (e *Enemy) Health() int { return e.health }

func (e *Enemy) TakeDamage(value int) {
	e.health -= value
	if e.health <= 0 && !e.defeated {
		e.defeated = true
		if e.OnDefeated != nil {
			e.OnDefeated(e)
		}
	}
}

func (e *Enemy) Defeated() bool { return e.defeated }
