// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// This file evaluates the combiner on the CPU with the same arithmetic
// as the generated fragment stage. It backs tests and gxc -eval.

// TevOverflow truncates v to 8-bit precision and wraps it into [0, 1]:
// float(int(v*255) & 255) / 255.
func TevOverflow(v float32) float32 {
	return float32(int32(v*255)&255) / 255
}

// TevOverflowVec4 applies TevOverflow to each component.
func TevOverflowVec4(v mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{TevOverflow(v[0]), TevOverflow(v[1]), TevOverflow(v[2]), TevOverflow(v[3])}
}

// TevInputs are the four operands of a stage before truncation. A, B
// and C are truncated with TevOverflow when evaluated; D is not.
type TevInputs struct {
	A, B, C, D mgl32.Vec4
}

func (in TevInputs) overflow() TevInputs {
	return TevInputs{A: TevOverflowVec4(in.A), B: TevOverflowVec4(in.B), C: TevOverflowVec4(in.C), D: in.D}
}

func saturate(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

func tevBiasScaleValue(v float32, bias TevBias, scale TevScale) float32 {
	switch bias {
	case TevBiasAddHalf:
		v += 0.5
	case TevBiasSubHalf:
		v -= 0.5
	}
	switch scale {
	case TevScale2:
		v *= 2
	case TevScale4:
		v *= 4
	case TevScaleDivide2:
		v *= 0.5
	}
	return v
}

func pack16(v mgl32.Vec4) float32 { return v[0] + v[1]*256 }
func pack24(v mgl32.Vec4) float32 { return v[0] + v[1]*256 + v[2]*65536 }

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// evalTevChannel evaluates channel ch (0..3) of a stage whose operands
// are already truncated.
func evalTevChannel(op TevOp, bias TevBias, scale TevScale, clamp bool, in TevInputs, ch int) float32 {
	a, b, c, d := in.A[ch], in.B[ch], in.C[ch], in.D[ch]
	var v float32
	switch op {
	case TevOpAdd, TevOpSub:
		v = a*(1-c) + b*c
		if op == TevOpSub {
			v = -v
		}
		v = tevBiasScaleValue(v+d, bias, scale)
	case TevOpCompR8GT:
		v = boolf(in.A[0] > in.B[0])*c + d
	case TevOpCompR8EQ:
		v = boolf(in.A[0] == in.B[0])*c + d
	case TevOpCompGR16GT:
		v = boolf(pack16(in.A) > pack16(in.B))*c + d
	case TevOpCompGR16EQ:
		v = boolf(pack16(in.A) == pack16(in.B))*c + d
	case TevOpCompBGR24GT:
		v = boolf(pack24(in.A) > pack24(in.B))*c + d
	case TevOpCompBGR24EQ:
		v = boolf(pack24(in.A) == pack24(in.B))*c + d
	case TevOpCompRGB8GT:
		v = boolf(a > b)*c + d
	default:
		v = boolf(a == b)*c + d
	}
	if clamp {
		v = saturate(v)
	}
	return v
}

// EvalTevColorOp evaluates the color half of a stage.
func EvalTevColorOp(op TevOp, bias TevBias, scale TevScale, clamp bool, in TevInputs) mgl32.Vec3 {
	in = in.overflow()
	return mgl32.Vec3{
		evalTevChannel(op, bias, scale, clamp, in, 0),
		evalTevChannel(op, bias, scale, clamp, in, 1),
		evalTevChannel(op, bias, scale, clamp, in, 2),
	}
}

// EvalTevAlphaOp evaluates the alpha half of a stage.
func EvalTevAlphaOp(op TevOp, bias TevBias, scale TevScale, clamp bool, in TevInputs) float32 {
	return evalTevChannel(op, bias, scale, clamp, in.overflow(), 3)
}

func evalAlphaCompare(cmp CompareType, alpha, ref float32) bool {
	switch cmp {
	case CompareNever:
		return false
	case CompareLess:
		return alpha < ref
	case CompareEqual:
		return alpha == ref
	case CompareLEqual:
		return alpha <= ref
	case CompareGreater:
		return alpha > ref
	case CompareNEqual:
		return alpha != ref
	case CompareGEqual:
		return alpha >= ref
	default:
		return true
	}
}

// EvalAlphaTest reports whether a fragment with the given output alpha
// passes the test. A false result means the fragment is discarded.
func EvalAlphaTest(at AlphaTest, alpha float32) bool {
	a := evalAlphaCompare(at.CompareA, alpha, at.ReferenceA)
	b := evalAlphaCompare(at.CompareB, alpha, at.ReferenceB)
	return combineAlphaTest(at.Op, a, b)
}
