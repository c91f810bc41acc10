package fortune

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource 카테고리 노이즈 / 행운 샘플링에 쓰이는 난수원
// *rand.Rand 가 그대로 만족한다. 테스트에서는 고정 시드나 스크립트 소스를 주입
type RandomSource interface {
	Intn(n int) int
}

// LockedRand is a RandomSource safe for concurrent use
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand creates a seeded concurrent-safe source
// seed == 0 이면 현재 시각으로 시드 (montecarlo와 동일 규칙)
func NewLockedRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n)
func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// noise returns a uniform integer in [-max, +max]
func noise(src RandomSource, max int) int {
	if max <= 0 {
		return 0
	}
	return src.Intn(2*max+1) - max
}

// sample picks up to k items without replacement (partial Fisher-Yates)
// 입력 슬라이스는 변경하지 않는다
func sample(src RandomSource, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}

	pool := make([]string, len(items))
	copy(pool, items)

	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
