// Package toolchain backs the "cplate doctor" command. It looks for the
// external tools a scaffolded project needs (cmake and clang-format), checks
// that cmake is new enough for the generated CMakeLists.txt, and reports
// which project artifacts are present in the target directory.
package toolchain
