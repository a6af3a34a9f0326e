package timing

import (
	"testing"
	"time"
)

func TestTimeProviderImplementations(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected second reading after first, got t1=%v t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testBase)

	if got := mock.Now(); !got.Equal(testBase) {
		t.Errorf("Expected initial time %v, got %v", testBase, got)
	}

	mock.Advance(16 * time.Millisecond)
	mock.Advance(16 * time.Millisecond)
	want := testBase.Add(32 * time.Millisecond)
	if got := mock.Now(); !got.Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, got)
	}

	jump := testBase.Add(time.Hour)
	mock.SetTime(jump)
	if got := mock.Now(); !got.Equal(jump) {
		t.Errorf("Expected %v after SetTime, got %v", jump, got)
	}
}
