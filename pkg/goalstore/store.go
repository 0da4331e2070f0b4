// Package goalstore is a sharded, TTL-expiring in-memory store for encoded
// terminal goal results. Results stay retrievable (and byte-identical) for at
// least the configured retention window, after which they are swept so a
// long-running action server's memory stays bounded.
package goalstore

import (
    "sync"
    "sync/atomic"
    "time"
)

type Options struct {
    Shards   int           // shard count (default 64)
    MaxBytes uint64        // hard cap on stored value bytes (0 = unlimited)
    Sweep    time.Duration // sweep interval for expired entries (default 1s)
}

func (o Options) withDefaults() Options {
    if o.Shards <= 0 {
        o.Shards = 64
    }
    if o.Sweep <= 0 {
        o.Sweep = time.Second
    }
    return o
}

type entry struct {
    val      []byte
    expireAt int64 // unix nano; 0 = no expiry
}

type shard struct {
    mu sync.RWMutex
    m  map[string]entry
}

// Store is safe for concurrent use. Values are copied on Put and Get so
// callers can never alias stored bytes.
type Store struct {
    opts    Options
    shards  []shard
    closeCh chan struct{}
    wg      sync.WaitGroup
    nowFn   func() time.Time

    mKeys    atomic.Int64
    mBytes   atomic.Uint64
    mHits    atomic.Uint64
    mMisses  atomic.Uint64
    mExpired atomic.Uint64
}

func New(opts Options) *Store {
    opts = opts.withDefaults()
    s := &Store{
        opts:    opts,
        shards:  make([]shard, opts.Shards),
        closeCh: make(chan struct{}),
        nowFn:   time.Now,
    }
    for i := range s.shards {
        s.shards[i].m = make(map[string]entry)
    }
    s.wg.Add(1)
    go s.sweeper()
    return s
}

// Close stops the sweeper. Safe to call more than once.
func (s *Store) Close() {
    select {
    case <-s.closeCh:
    default:
        close(s.closeCh)
    }
    s.wg.Wait()
}

// FNV-1a 64
func (s *Store) shardFor(key string) *shard {
    var h uint64 = 1469598103934665603
    for i := 0; i < len(key); i++ {
        h ^= uint64(key[i])
        h *= 1099511628211
    }
    return &s.shards[int(h%uint64(len(s.shards)))]
}

// Put stores val under key with the given ttl (0 = keep until deleted).
// Returns false when MaxBytes would be exceeded; the caller decides whether
// dropping the oldest results or rejecting is appropriate.
func (s *Store) Put(key string, val []byte, ttl time.Duration) bool {
    cp := make([]byte, len(val))
    copy(cp, val)
    expAt := int64(0)
    if ttl > 0 {
        expAt = s.nowFn().Add(ttl).UnixNano()
    }

    sh := s.shardFor(key)
    sh.mu.Lock()
    prev, existed := sh.m[key]
    delta := len(cp)
    if existed {
        delta -= len(prev.val)
    }
    if delta > 0 && s.opts.MaxBytes > 0 && s.mBytes.Load()+uint64(delta) > s.opts.MaxBytes {
        sh.mu.Unlock()
        return false
    }
    sh.m[key] = entry{val: cp, expireAt: expAt}
    sh.mu.Unlock()

    if delta >= 0 {
        s.mBytes.Add(uint64(delta))
    } else {
        s.mBytes.Add(^uint64(-delta - 1))
    }
    if !existed {
        s.mKeys.Add(1)
    }
    return true
}

// Get returns a copy of the stored value. Expired entries read as missing
// even before the sweeper reaps them.
func (s *Store) Get(key string) ([]byte, bool) {
    sh := s.shardFor(key)
    sh.mu.RLock()
    e, ok := sh.m[key]
    sh.mu.RUnlock()
    if !ok || (e.expireAt != 0 && s.nowFn().UnixNano() >= e.expireAt) {
        s.mMisses.Add(1)
        return nil, false
    }
    s.mHits.Add(1)
    out := make([]byte, len(e.val))
    copy(out, e.val)
    return out, true
}

// Delete removes key, reporting whether it was present.
func (s *Store) Delete(key string) bool {
    sh := s.shardFor(key)
    sh.mu.Lock()
    e, ok := sh.m[key]
    if ok {
        delete(sh.m, key)
    }
    sh.mu.Unlock()
    if ok {
        s.mKeys.Add(-1)
        s.mBytes.Add(^uint64(len(e.val) - 1))
    }
    return ok
}

// Len reports the number of live keys.
func (s *Store) Len() int { return int(s.mKeys.Load()) }

type Metrics struct {
    Keys    int64
    Bytes   uint64
    Hits    uint64
    Misses  uint64
    Expired uint64
}

func (s *Store) Metrics() Metrics {
    return Metrics{
        Keys:    s.mKeys.Load(),
        Bytes:   s.mBytes.Load(),
        Hits:    s.mHits.Load(),
        Misses:  s.mMisses.Load(),
        Expired: s.mExpired.Load(),
    }
}

func (s *Store) sweeper() {
    defer s.wg.Done()
    t := time.NewTicker(s.opts.Sweep)
    defer t.Stop()
    for {
        select {
        case <-s.closeCh:
            return
        case <-t.C:
            now := s.nowFn().UnixNano()
            for i := range s.shards {
                sh := &s.shards[i]
                sh.mu.Lock()
                for k, e := range sh.m {
                    if e.expireAt != 0 && now >= e.expireAt {
                        delete(sh.m, k)
                        s.mKeys.Add(-1)
                        s.mBytes.Add(^uint64(len(e.val) - 1))
                        s.mExpired.Add(1)
                    }
                }
                sh.mu.Unlock()
            }
        }
    }
}
