// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pose

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// maxFrameDepth bounds parent walks so a cyclic frame graph cannot loop forever.
const maxFrameDepth = 64

// TransformListener looks up the transform between two coordinate frames.
type TransformListener interface {
	// LookupTransform returns the transform mapping points expressed in
	// source into target.
	LookupTransform(target, source string) (Transform, error)
}

// Tracker is the pose-tracking service shared by the components of a
// driving configuration.
type Tracker interface {
	TransformListener() TransformListener
	// SetLocal records whether a real local planner is active, which turns
	// on locally optimized tracking downstream.
	SetLocal(local bool)
	IsLocal() bool
}

// Buffer stores the latest transform of each frame relative to its parent.
// It is safe for concurrent use.
type Buffer struct {
	mu     sync.RWMutex
	frames map[string]edge
}

type edge struct {
	parent string
	tf     Transform
}

// NewBuffer creates an empty transform buffer.
func NewBuffer() *Buffer {
	return &Buffer{frames: make(map[string]edge)}
}

// Set records tf as the transform of child expressed in parent.
func (b *Buffer) Set(parent, child string, tf Transform) error {
	if parent == "" || child == "" {
		return fmt.Errorf("frame names must not be empty")
	}
	if parent == child {
		return fmt.Errorf("frame %q cannot be its own parent", child)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames[child] = edge{parent: parent, tf: tf}
	return nil
}

// LookupTransform implements TransformListener.
func (b *Buffer) LookupTransform(target, source string) (Transform, error) {
	if target == source {
		return Identity(), nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	targetRoot, rootFromTarget, err := b.toRoot(target)
	if err != nil {
		return Transform{}, err
	}
	sourceRoot, rootFromSource, err := b.toRoot(source)
	if err != nil {
		return Transform{}, err
	}
	if targetRoot != sourceRoot {
		return Transform{}, fmt.Errorf("frames %q and %q are not connected", target, source)
	}

	return rootFromTarget.Inverse().Compose(rootFromSource), nil
}

// toRoot walks parents from frame and returns the root frame name together
// with the transform mapping frame into the root.
func (b *Buffer) toRoot(frame string) (string, Transform, error) {
	tf := Identity()
	current := frame
	for range maxFrameDepth {
		e, ok := b.frames[current]
		if !ok {
			if current == frame && !b.isParent(frame) {
				return "", Transform{}, fmt.Errorf("unknown frame %q", frame)
			}
			return current, tf, nil
		}
		tf = e.tf.Compose(tf)
		current = e.parent
	}
	return "", Transform{}, fmt.Errorf("frame %q exceeds maximum depth %d", frame, maxFrameDepth)
}

func (b *Buffer) isParent(frame string) bool {
	for _, e := range b.frames {
		if e.parent == frame {
			return true
		}
	}
	return false
}

// StaticTracker is an in-process Tracker backed by a Buffer.
type StaticTracker struct {
	buffer *Buffer
	local  atomic.Bool
}

// NewStaticTracker creates a tracker over buffer. A nil buffer gets a fresh one.
func NewStaticTracker(buffer *Buffer) *StaticTracker {
	if buffer == nil {
		buffer = NewBuffer()
	}
	return &StaticTracker{buffer: buffer}
}

// TransformListener returns the tracker's transform buffer.
func (t *StaticTracker) TransformListener() TransformListener {
	return t.buffer
}

// Buffer returns the underlying transform buffer for updates.
func (t *StaticTracker) Buffer() *Buffer {
	return t.buffer
}

// SetLocal implements Tracker.
func (t *StaticTracker) SetLocal(local bool) {
	t.local.Store(local)
}

// IsLocal implements Tracker.
func (t *StaticTracker) IsLocal() bool {
	return t.local.Load()
}
