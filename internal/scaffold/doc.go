// Package scaffold ensures the boilerplate of a CMake-based C++ project exists
// in a target directory. It powers the root "cplate" command: for each missing
// file (.clang-format, main.cpp, CMakeLists.txt) it asks for confirmation and
// writes a fixed template, and it always creates the build/ directory when it
// is absent. Existing entries are never touched.
package scaffold
