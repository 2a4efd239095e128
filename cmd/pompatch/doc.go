// Pompatch strips references to the defunct propertymapper-maven-plugin and
// its trojanbug.plugins plugin repository from Maven pom.xml files before a
// build.
//
// It patches a root pom.xml and every immediate child module's pom.xml,
// rewriting only files that change, and prints a count of patched modules.
//
// Usage:
//
//	pompatch                                  # patch /build/main/plugins/pom.xml and its children
//	pompatch --root ./pom.xml                 # patch another tree
//	pompatch --dry-run --diff                 # show what would change
//	pompatch --format json                    # machine-readable report
//	pompatch rules                            # list the removal rules
//	pompatch config set root /src/pom.xml     # persist a default root
package main
