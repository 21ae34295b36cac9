package massjson

//Package massjson implements serialization of molmass results
//and errors. Its planned use is the communication of molmass
//programs with other programs, in any language that can read JSON,
//for instance via UNIX pipes: each weighed formula becomes one JSON
//object on its own line.
