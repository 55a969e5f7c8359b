package scaffold

// Literal file contents written for each file artifact. The bytes are written
// as-is; there is no templating.
const (
	clangFormatTemplate = "BasedOnStyle: Google\n" +
		"IndentWidth: 4\n" +
		"UseTab: Always\n" +
		"TabWidth: 4\n"

	mainSourceTemplate = "int main (int argc, char *argv[]){\n" +
		"return 0;\n" +
		"}\n"

	cmakeListsTemplate = "cmake_minimum_required(VERSION 3.10)\n" +
		"# Your project name.\n" +
		"project(testproject)\n" +
		"\n" +
		"# This will create compile_commands.json.\n" +
		"set(CMAKE_EXPORT_COMPILE_COMMANDS ON)\n" +
		"\n" +
		"# Specify C++17 standard\n" +
		"set(CMAKE_CXX_STANDARD 17)\n" +
		"set(CMAKE_CXX_STANDARD_REQUIRED ON)\n" +
		"\n" +
		"# Add your .exe target\n" +
		"add_executable(testproject main.cpp)\n"
)

// MinCMakeVersion is the version pinned by cmake_minimum_required in the
// generated CMakeLists.txt.
const MinCMakeVersion = "3.10"
