package ratelimit

import "testing"

func TestAllowWithinBurst(t *testing.T) {
    l := New()
    for i := 0; i < 5; i++ {
        if !l.Allow("client-a", 5, 1) {
            t.Fatalf("request %d should pass within burst", i+1)
        }
    }
    if l.Allow("client-a", 5, 1) {
        t.Fatalf("request over burst should be rejected")
    }
}

func TestKeysAreIndependent(t *testing.T) {
    l := New()
    for i := 0; i < 3; i++ {
        l.Allow("client-a", 3, 1)
    }
    if l.Allow("client-a", 3, 1) {
        t.Fatalf("client-a should be drained")
    }
    if !l.Allow("client-b", 3, 1) {
        t.Fatalf("client-b should have a fresh bucket")
    }
}
