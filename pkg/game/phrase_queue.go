package game

import (
	"math/rand"
)

// PhraseQueue 无重复循环短语队列
//
// 每个完整循环中短语池里的每条短语恰好出现一次；
// 队列耗尽时才重新洗牌填充，并保证新循环的第一条不会与上一条重复
// （池大小为 1 时无法避免，直接重复）。
//
// 日常短语和惊吓短语各使用一个独立实例。
type PhraseQueue struct {
	pool  []string   // 完整短语池
	queue []string   // 本循环剩余短语（从尾部弹出）
	last  string     // 最近一次返回的短语，用于跨循环去重
	rng   *rand.Rand // 随机源，测试时注入固定种子
}

// NewPhraseQueue 创建短语队列
//
// 参数：
//   - pool: 完整短语池（保存副本，调用方可以复用切片）
//   - rng: 随机源，为 nil 时使用全局随机源
func NewPhraseQueue(pool []string, rng *rand.Rand) *PhraseQueue {
	q := &PhraseQueue{rng: rng}
	q.SetPool(pool)
	return q
}

// SetPool 替换短语池并清空当前循环
//
// 自定义短语生效/失效时调用；空池是允许的，此时 Next 返回空串，
// 由调用方负责传入非空池（内置池兜底在 SpeechSystem 中处理）。
func (q *PhraseQueue) SetPool(pool []string) {
	q.pool = make([]string, len(pool))
	copy(q.pool, pool)
	q.queue = nil
}

// PoolSize 返回当前短语池大小
func (q *PhraseQueue) PoolSize() int {
	return len(q.pool)
}

// Next 返回下一条短语
//
// 队列耗尽时重新洗牌填充：洗牌后如果新循环第一条等于上一条返回的短语
// 且池大小大于 1，则把它换到循环中的其他位置。
//
// 返回：
//   - string: 下一条短语，池为空时返回空串
func (q *PhraseQueue) Next() string {
	if len(q.pool) == 0 {
		return ""
	}

	if len(q.queue) == 0 {
		q.refill()
	}

	// 从尾部弹出
	phrase := q.queue[len(q.queue)-1]
	q.queue = q.queue[:len(q.queue)-1]
	q.last = phrase
	return phrase
}

// refill 重新洗牌填充队列，避免与上一条短语紧邻重复
func (q *PhraseQueue) refill() {
	q.queue = make([]string, len(q.pool))
	copy(q.queue, q.pool)

	swap := func(i, j int) {
		q.queue[i], q.queue[j] = q.queue[j], q.queue[i]
	}
	if q.rng != nil {
		q.rng.Shuffle(len(q.queue), swap)
	} else {
		rand.Shuffle(len(q.queue), swap)
	}

	// 尾部是下一条要弹出的短语；若与上一条相同则与头部交换
	if len(q.queue) > 1 && q.queue[len(q.queue)-1] == q.last {
		q.queue[0], q.queue[len(q.queue)-1] = q.queue[len(q.queue)-1], q.queue[0]
	}
}
