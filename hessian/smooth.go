package hessian

import (
	"math"

	"github.com/hupe1980/tracego/model"
	"github.com/hupe1980/tracego/volume"
)

// smoothedVolume is a dense Gaussian-smoothed copy of the input, with the
// second-derivative estimators the analyzer needs. Boundary coordinates are
// clamped, matching mirror-free extension.
type smoothedVolume struct {
	width, height, depth int
	data                 []float64
}

func (s *smoothedVolume) at(x, y, z int) float64 {
	if x < 0 {
		x = 0
	} else if x >= s.width {
		x = s.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.height {
		y = s.height - 1
	}
	if z < 0 {
		z = 0
	} else if z >= s.depth {
		z = s.depth - 1
	}
	return s.data[(z*s.height+y)*s.width+x]
}

// hessian2D returns (hxx, hyy, hxy) at (x, y) by central differences in
// physical units.
func (s *smoothedVolume) hessian2D(x, y int, cal model.Calibration) (hxx, hyy, hxy float64) {
	c := s.at(x, y, 0)
	hxx = (s.at(x+1, y, 0) - 2*c + s.at(x-1, y, 0)) / (cal.X * cal.X)
	hyy = (s.at(x, y+1, 0) - 2*c + s.at(x, y-1, 0)) / (cal.Y * cal.Y)
	hxy = (s.at(x+1, y+1, 0) - s.at(x+1, y-1, 0) - s.at(x-1, y+1, 0) + s.at(x-1, y-1, 0)) /
		(4 * cal.X * cal.Y)
	return hxx, hyy, hxy
}

// hessian3D returns the six distinct Hessian entries at (x, y, z) by central
// differences in physical units.
func (s *smoothedVolume) hessian3D(x, y, z int, cal model.Calibration) (hxx, hyy, hzz, hxy, hxz, hyz float64) {
	c := s.at(x, y, z)
	hxx = (s.at(x+1, y, z) - 2*c + s.at(x-1, y, z)) / (cal.X * cal.X)
	hyy = (s.at(x, y+1, z) - 2*c + s.at(x, y-1, z)) / (cal.Y * cal.Y)
	hzz = (s.at(x, y, z+1) - 2*c + s.at(x, y, z-1)) / (cal.Z * cal.Z)
	hxy = (s.at(x+1, y+1, z) - s.at(x+1, y-1, z) - s.at(x-1, y+1, z) + s.at(x-1, y-1, z)) /
		(4 * cal.X * cal.Y)
	hxz = (s.at(x+1, y, z+1) - s.at(x+1, y, z-1) - s.at(x-1, y, z+1) + s.at(x-1, y, z-1)) /
		(4 * cal.X * cal.Z)
	hyz = (s.at(x, y+1, z+1) - s.at(x, y+1, z-1) - s.at(x, y-1, z+1) + s.at(x, y-1, z-1)) /
		(4 * cal.Y * cal.Z)
	return hxx, hyy, hzz, hxy, hxz, hyz
}

// gaussianKernel builds a normalized 1D kernel for sigma expressed in voxels.
// The radius covers three standard deviations.
func gaussianKernel(sigmaVoxels float64) []float64 {
	radius := int(math.Ceil(3 * sigmaVoxels))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigmaVoxels * sigmaVoxels))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// gaussianSmooth convolves the volume with a separable Gaussian. Sigma is
// physical; each axis uses sigma scaled by its voxel spacing. Axes with a
// single sample are left untouched.
func gaussianSmooth(vol volume.Volume, cal model.Calibration, sigma float64) *smoothedVolume {
	width, height, depth := vol.Width(), vol.Height(), vol.Depth()

	s := &smoothedVolume{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]float64, width*height*depth),
	}
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				s.data[(z*height+y)*width+x] = vol.Intensity(x, y, z)
			}
		}
	}

	tmp := make([]float64, len(s.data))

	convolveAxis := func(kernel []float64, dx, dy, dz int) {
		radius := len(kernel) / 2
		for z := 0; z < depth; z++ {
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					var acc float64
					for k := -radius; k <= radius; k++ {
						acc += kernel[k+radius] * s.at(x+k*dx, y+k*dy, z+k*dz)
					}
					tmp[(z*height+y)*width+x] = acc
				}
			}
		}
		copy(s.data, tmp)
	}

	if width > 1 {
		convolveAxis(gaussianKernel(sigma/cal.X), 1, 0, 0)
	}
	if height > 1 {
		convolveAxis(gaussianKernel(sigma/cal.Y), 0, 1, 0)
	}
	if depth > 1 {
		convolveAxis(gaussianKernel(sigma/cal.Z), 0, 0, 1)
	}

	return s
}
